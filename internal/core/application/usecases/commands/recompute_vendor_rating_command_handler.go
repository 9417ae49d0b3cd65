package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
)

// RecomputeVendorRatingCommandHandler runs the rating aggregator in its own
// transaction. With no reviews left the stored rating is kept.
type RecomputeVendorRatingCommandHandler struct {
	uowFactory ReviewUoWFactory
	aggregator services.RatingAggregator
}

func NewRecomputeVendorRatingCommandHandler(uowFactory ReviewUoWFactory) RecomputeVendorRatingCommandHandler {
	return RecomputeVendorRatingCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewRatingAggregator(),
	}
}

func (h RecomputeVendorRatingCommandHandler) Handle(ctx context.Context, cmd RecomputeVendorRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendor, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	ratings, err := uow.ReviewRepository().ListRatings(ctx, vendor.ID())
	if err != nil {
		return err
	}

	changed, err := h.aggregator.Recompute(vendor, ratings)
	if err != nil || !changed {
		return err
	}

	if err = uow.VendorRepository().Update(ctx, vendor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// VendorRatingRecomputer is what review handlers trigger after each commit.
type VendorRatingRecomputer interface {
	Handle(ctx context.Context, cmd RecomputeVendorRatingCommand) error
}

// recomputeQuietly never fails the caller: errors are only logged.
func recomputeQuietly(ctx context.Context, r VendorRatingRecomputer, logger *slog.Logger, vendorID kernel.UUID) {
	cmd, err := NewRecomputeVendorRatingCommand(vendorID)
	if err == nil {
		err = r.Handle(ctx, cmd)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Vendor rating recompute failed", "vendor_id", vendorID.String(), "error", err)
	}
}
