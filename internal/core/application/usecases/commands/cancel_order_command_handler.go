package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

var ErrCancelOrderForbidden = errs.NewForbiddenError("only the customer, the vendor or an admin can cancel an order")

// CancelOrderCommandHandler cancels any order that is not yet delivered. The
// payment axis is left alone: a completed payment is not refunded here.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = h.authorize(ctx, uow, o, cmd.Actor()); err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CancelOrderCommandHandler) authorize(ctx context.Context, uow OrderUoW, o *order.Order, actor kernel.Actor) error {
	switch actor.Role() { //nolint:exhaustive // delivery agents and unknown roles fall through to forbidden
	case kernel.Admin:
		return nil
	case kernel.Customer:
		return o.AuthorizeCustomer(actor)
	case kernel.Vendor:
		vendor, err := uow.VendorRepository().Get(ctx, o.VendorID())
		if err != nil {
			return err
		}
		return vendor.AuthorizeOwner(actor)
	default:
		return ErrCancelOrderForbidden
	}
}
