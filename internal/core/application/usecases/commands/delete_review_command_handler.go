package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
)

// DeleteReviewCommandHandler removes a review on behalf of its author and
// recomputes the vendor rating. Deleting the last review keeps the previous
// rating in place.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	recomputer VendorRatingRecomputer
	logger     *slog.Logger
}

func NewDeleteReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	recomputer VendorRatingRecomputer,
	logger *slog.Logger,
) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
		recomputer: recomputer,
		logger:     logger.With("component", "delete_review"),
	}
}

func (h DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	vendorID, err := h.remove(ctx, cmd)
	if err != nil {
		return err
	}

	recomputeQuietly(ctx, h.recomputer, h.logger, vendorID)
	return nil
}

func (h DeleteReviewCommandHandler) remove(ctx context.Context, cmd DeleteReviewCommand) (kernel.UUID, error) {
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

	if err = uow.ReviewRepository().Delete(ctx, r.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return r.VendorID(), nil
}
