package commands_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func recomputeFor(vendorID kernel.UUID) any {
	return mock.MatchedBy(func(cmd commands.RecomputeVendorRatingCommand) bool {
		return cmd.VendorID().IsEqual(vendorID)
	})
}

func newReview(t *testing.T, customerID, vendorID kernel.UUID, stars int) *review.Review {
	t.Helper()
	r, err := review.NewReview(customerID, vendorID, nil, rating(t, stars), "tasty", nil)
	require.NoError(t, err)
	return r
}

func TestSubmitReviewCommandHandler_Handle(t *testing.T) {
	customerID := kernel.NewUUID()
	customer := actorWithID(t, customerID, kernel.Customer)

	t.Run("eligible customer reviews vendor", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, kernel.NewUUID())
		cmd, err := commands.NewSubmitReviewCommand(customer, vendor.ID(), nil, rating(t, 5), "great", []string{"a.jpg"})
		require.NoError(t, err)

		uow, r := newUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once(),
			r.orders.On("HasDeliveredFromVendor", ctx, customerID, vendor.ID()).Return(true, nil).Once(),
			r.reviews.On("Exists", ctx, customerID, vendor.ID(), (*kernel.UUID)(nil)).Return(false, nil).Once(),
			r.reviews.On("Add", ctx, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		recomputer := new(MockRatingRecomputer)
		recomputer.On("Handle", ctx, recomputeFor(vendor.ID())).Return(nil).Once()

		created, err := commands.NewSubmitReviewCommandHandler(
			factoryFor[commands.ReviewUoW](uow), recomputer, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 5, created.Rating().Value())
		assert.Equal(t, []string{"a.jpg"}, created.Images())
		r.assert(t)
		recomputer.AssertExpectations(t)
	})

	t.Run("customer without delivered order is not eligible", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, kernel.NewUUID())
		cmd, err := commands.NewSubmitReviewCommand(customer, vendor.ID(), nil, rating(t, 4), "", nil)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once()
		r.orders.On("HasDeliveredFromVendor", ctx, customerID, vendor.ID()).Return(false, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		recomputer := new(MockRatingRecomputer)

		_, err = commands.NewSubmitReviewCommandHandler(
			factoryFor[commands.ReviewUoW](uow), recomputer, discardLogger()).Handle(ctx, cmd)

		require.ErrorIs(t, err, review.ErrNotEligibleForReview)
		recomputer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("second review of the same target", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, kernel.NewUUID())
		item := newMenuItem(t, vendor.ID(), "Idli", 40)
		itemID := item.ID()
		cmd, err := commands.NewSubmitReviewCommand(customer, vendor.ID(), &itemID, rating(t, 4), "", nil)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once()
		r.items.On("Get", ctx, itemID).Return(item, nil).Once()
		r.orders.On("HasDeliveredFromVendor", ctx, customerID, vendor.ID()).Return(true, nil).Once()
		r.reviews.On("Exists", ctx, customerID, vendor.ID(), &itemID).Return(true, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err = commands.NewSubmitReviewCommandHandler(
			factoryFor[commands.ReviewUoW](uow), new(MockRatingRecomputer), discardLogger()).Handle(ctx, cmd)

		require.ErrorIs(t, err, review.ErrAlreadyReviewed)
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})

	t.Run("menu item of another vendor", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, kernel.NewUUID())
		item := newMenuItem(t, kernel.NewUUID(), "Idli", 40)
		itemID := item.ID()
		cmd, err := commands.NewSubmitReviewCommand(customer, vendor.ID(), &itemID, rating(t, 4), "", nil)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once()
		r.items.On("Get", ctx, itemID).Return(item, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err = commands.NewSubmitReviewCommandHandler(
			factoryFor[commands.ReviewUoW](uow), new(MockRatingRecomputer), discardLogger()).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrMenuItemOfOtherVendor)
		assert.True(t, errs.IsInvalidInput(err))
	})

	t.Run("recompute failure does not fail the review", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, kernel.NewUUID())
		cmd, err := commands.NewSubmitReviewCommand(customer, vendor.ID(), nil, rating(t, 3), "", nil)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once()
		r.orders.On("HasDeliveredFromVendor", ctx, customerID, vendor.ID()).Return(true, nil).Once()
		r.reviews.On("Exists", ctx, customerID, vendor.ID(), (*kernel.UUID)(nil)).Return(false, nil).Once()
		r.reviews.On("Add", ctx, mock.AnythingOfType("*review.Review")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		recomputer := new(MockRatingRecomputer)
		recomputer.On("Handle", ctx, recomputeFor(vendor.ID())).Return(errors.New("db gone")).Once()

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		created, err := commands.NewSubmitReviewCommandHandler(
			factoryFor[commands.ReviewUoW](uow), recomputer, logger).Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Contains(t, logs.String(), "Vendor rating recompute failed")
		assert.Contains(t, logs.String(), "db gone")
	})

	t.Run("vendors cannot review", func(t *testing.T) {
		cmd, err := commands.NewSubmitReviewCommand(
			newActor(t, kernel.Vendor), kernel.NewUUID(), nil, rating(t, 3), "", nil)
		require.NoError(t, err)
		factory := new(MockUoWFactory[commands.ReviewUoW])

		_, err = commands.NewSubmitReviewCommandHandler(factory, new(MockRatingRecomputer), discardLogger()).
			Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrSubmitReviewForbidden)
	})
}

func TestUpdateReviewCommandHandler_Handle(t *testing.T) {
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	t.Run("author revises", func(t *testing.T) {
		ctx := t.Context()
		existing := newReview(t, customerID, vendorID, 2)
		cmd, err := commands.NewUpdateReviewCommand(
			actorWithID(t, customerID, kernel.Customer), existing.ID(), rating(t, 4), "better now", nil)
		require.NoError(t, err)

		uow, r := newUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.reviews.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
			r.reviews.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		recomputer := new(MockRatingRecomputer)
		recomputer.On("Handle", ctx, recomputeFor(vendorID)).Return(nil).Once()

		err = commands.NewUpdateReviewCommandHandler(
			factoryFor[commands.ReviewUoW](uow), recomputer, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 4, existing.Rating().Value())
		assert.Equal(t, "better now", existing.Comment())
		r.assert(t)
		recomputer.AssertExpectations(t)
	})

	t.Run("someone else is forbidden", func(t *testing.T) {
		ctx := t.Context()
		existing := newReview(t, customerID, vendorID, 2)
		cmd, err := commands.NewUpdateReviewCommand(
			newActor(t, kernel.Customer), existing.ID(), rating(t, 5), "", nil)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.reviews.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		recomputer := new(MockRatingRecomputer)

		err = commands.NewUpdateReviewCommandHandler(
			factoryFor[commands.ReviewUoW](uow), recomputer, discardLogger()).Handle(ctx, cmd)

		require.ErrorIs(t, err, review.ErrNotAuthor)
		assert.Equal(t, 2, existing.Rating().Value())
		recomputer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestDeleteReviewCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	existing := newReview(t, customerID, vendorID, 5)
	cmd, err := commands.NewDeleteReviewCommand(actorWithID(t, customerID, kernel.Customer), existing.ID())
	require.NoError(t, err)

	uow, r := newUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.reviews.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		r.reviews.On("Delete", ctx, existing.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	recomputer := new(MockRatingRecomputer)
	recomputer.On("Handle", ctx, recomputeFor(vendorID)).Return(nil).Once()

	err = commands.NewDeleteReviewCommandHandler(
		factoryFor[commands.ReviewUoW](uow), recomputer, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	r.assert(t)
	recomputer.AssertExpectations(t)
}

func TestRecomputeVendorRatingCommandHandler_Handle(t *testing.T) {
	t.Run("stores the rounded mean", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, kernel.NewUUID())
		cmd, err := commands.NewRecomputeVendorRatingCommand(vendor.ID())
		require.NoError(t, err)

		uow, r := newUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once(),
			r.reviews.On("ListRatings", ctx, vendor.ID()).
				Return([]review.Rating{rating(t, 5), rating(t, 4)}, nil).Once(),
			r.vendors.On("Update", ctx, vendor).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewRecomputeVendorRatingCommandHandler(factoryFor[commands.ReviewUoW](uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.InDelta(t, 4.5, vendor.AverageRating(), 1e-9)
		assert.Equal(t, 2, vendor.TotalReviews())
		r.assert(t)
	})

	t.Run("keeps cached values when no reviews remain", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, kernel.NewUUID())
		require.NoError(t, vendor.ApplyRating(3.0, 1))
		cmd, err := commands.NewRecomputeVendorRatingCommand(vendor.ID())
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once()
		r.reviews.On("ListRatings", ctx, vendor.ID()).Return([]review.Rating{}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewRecomputeVendorRatingCommandHandler(factoryFor[commands.ReviewUoW](uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.InDelta(t, 3.0, vendor.AverageRating(), 1e-9)
		r.vendors.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing vendor", func(t *testing.T) {
		ctx := t.Context()
		vendorID := kernel.NewUUID()
		cmd, err := commands.NewRecomputeVendorRatingCommand(vendorID)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.vendors.On("Get", ctx, vendorID).Return(nil, errs.NewObjectNotFoundError("vendor", vendorID.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewRecomputeVendorRatingCommandHandler(factoryFor[commands.ReviewUoW](uow)).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
