package commands

import (
	"context"
)

// PurgeExpiredOrdersCommandHandler removes expired orders together with their
// payment attempts and reports how many orders were removed.
type PurgeExpiredOrdersCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewPurgeExpiredOrdersCommandHandler(uowFactory PaymentUoWFactory) PurgeExpiredOrdersCommandHandler {
	return PurgeExpiredOrdersCommandHandler{uowFactory: uowFactory}
}

func (h PurgeExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PaymentRepository().DeleteForOrdersCreatedBefore(ctx, cmd.Cutoff()); err != nil {
		return 0, err
	}

	purged, err := uow.OrderRepository().DeleteCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
