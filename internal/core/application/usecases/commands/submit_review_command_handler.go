package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"
)

var (
	ErrSubmitReviewForbidden = errs.NewForbiddenError("only customers can write reviews")
	ErrMenuItemOfOtherVendor = errs.NewValueIsInvalidErrorWithCause(
		"menuItemId", errors.New("menu item belongs to another vendor"))
)

// SubmitReviewCommandHandler stores a review from an eligible customer and
// then triggers a rating recompute for the vendor. A recompute failure is
// logged and never fails the submission.
//
// Errors:
//   - review.ErrNotEligibleForReview without a delivered order from the vendor
//   - review.ErrAlreadyReviewed for a second review of the same vendor and menu item
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	recomputer VendorRatingRecomputer
	logger     *slog.Logger
}

func NewSubmitReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	recomputer VendorRatingRecomputer,
	logger *slog.Logger,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		recomputer: recomputer,
		logger:     logger.With("component", "submit_review"),
	}
}

func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(kernel.Customer) {
		return nil, ErrSubmitReviewForbidden
	}

	created, err := h.store(ctx, cmd)
	if err != nil {
		return nil, err
	}

	recomputeQuietly(ctx, h.recomputer, h.logger, created.VendorID())
	return created, nil
}

func (h SubmitReviewCommandHandler) store(ctx context.Context, cmd SubmitReviewCommand) (*review.Review, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendor, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return nil, err
	}

	if menuItemID := cmd.MenuItemID(); menuItemID != nil {
		item, itemErr := uow.MenuItemRepository().Get(ctx, *menuItemID)
		if itemErr != nil {
			return nil, itemErr
		}
		if !item.VendorID().IsEqual(vendor.ID()) {
			return nil, ErrMenuItemOfOtherVendor
		}
	}

	customerID := cmd.Actor().ID()

	eligible, err := uow.OrderRepository().HasDeliveredFromVendor(ctx, customerID, vendor.ID())
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, review.ErrNotEligibleForReview
	}

	exists, err := uow.ReviewRepository().Exists(ctx, customerID, vendor.ID(), cmd.MenuItemID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, review.ErrAlreadyReviewed
	}

	created, err := review.NewReview(customerID, vendor.ID(), cmd.MenuItemID(), cmd.Rating(), cmd.Comment(), cmd.Images())
	if err != nil {
		return nil, err
	}

	if err = uow.ReviewRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
