package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

var ErrPlaceOrderForbidden = errs.NewForbiddenError("only customers can place orders")

// PlaceOrderCommandHandler resolves the cart against the catalog, prices it and
// stores the order in state (ordered, pending, pending).
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.CartPricer
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewCartPricer(),
	}
}

// Handle fails with services.ErrItemNotFound, services.ErrItemUnavailable or
// services.ErrMixedVendorOrder when the cart cannot be priced.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(kernel.Customer) {
		return nil, ErrPlaceOrderForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menu, err := uow.MenuItemRepository().GetMany(ctx, cmd.MenuItemIDs())
	if err != nil {
		return nil, err
	}

	items, vendorID, err := h.pricer.Price(cmd.Lines(), menu)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.Actor().ID(), vendorID, items, cmd.Address())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
