package commands

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
)

// AddMenuItemCommandHandler lets a vendor owner (or an admin) extend the menu.
type AddMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddMenuItemCommandHandler(uowFactory CatalogUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (*catalog.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

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

	if err = vendor.AuthorizeOwner(cmd.Actor()); err != nil {
		return nil, err
	}

	item, err := catalog.NewMenuItem(vendor.ID(), cmd.Name(), cmd.Description(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
