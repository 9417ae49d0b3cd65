package commands

import (
	"context"
)

// AdvanceOrderStatusCommandHandler applies a vendor status change. The actor
// must own the order's vendor or be an admin. Consecutive calls are not
// ordered, so ordered → delivered is accepted.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	vendor, err := uow.VendorRepository().Get(ctx, o.VendorID())
	if err != nil {
		return err
	}

	if err = vendor.AuthorizeOwner(cmd.Actor()); err != nil {
		return err
	}

	if err = o.AdvanceStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
