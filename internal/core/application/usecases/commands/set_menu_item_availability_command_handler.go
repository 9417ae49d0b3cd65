package commands

import (
	"context"
)

type SetMenuItemAvailabilityCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSetMenuItemAvailabilityCommandHandler(uowFactory CatalogUoWFactory) SetMenuItemAvailabilityCommandHandler {
	return SetMenuItemAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle loads the item and its vendor, checks vendor ownership and stores the
// new availability flag.
func (h SetMenuItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetMenuItemAvailabilityCommand) error {
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

	item, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	vendor, err := uow.VendorRepository().Get(ctx, item.VendorID())
	if err != nil {
		return err
	}

	if err = vendor.AuthorizeOwner(cmd.Actor()); err != nil {
		return err
	}

	item.SetAvailability(cmd.Available())

	if err = uow.MenuItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
