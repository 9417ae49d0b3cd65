package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
)

// UpdateReviewCommandHandler lets the author revise a review, then recomputes
// the vendor rating.
type UpdateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	recomputer VendorRatingRecomputer
	logger     *slog.Logger
}

func NewUpdateReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	recomputer VendorRatingRecomputer,
	logger *slog.Logger,
) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
		recomputer: recomputer,
		logger:     logger.With("component", "update_review"),
	}
}

func (h UpdateReviewCommandHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	vendorID, err := h.revise(ctx, cmd)
	if err != nil {
		return err
	}

	recomputeQuietly(ctx, h.recomputer, h.logger, vendorID)
	return nil
}

func (h UpdateReviewCommandHandler) revise(ctx context.Context, cmd UpdateReviewCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.ReviewRepository().Get(ctx, cmd.ReviewID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = r.AuthorizeAuthor(cmd.Actor()); err != nil {
		return kernel.UUID{}, err
	}

	if err = r.Revise(cmd.Rating(), cmd.Comment(), cmd.Images()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ReviewRepository().Update(ctx, r); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return r.VendorID(), nil
}
