package commands

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrCreateVendorForbidden = errs.NewForbiddenError("only vendors and admins can create vendors")

// CreateVendorCommandHandler stores a new vendor whose owner is the actor.
// The rating cache starts at 0 with no reviews.
type CreateVendorCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateVendorCommandHandler(uowFactory CatalogUoWFactory) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{uowFactory: uowFactory}
}

func (h CreateVendorCommandHandler) Handle(ctx context.Context, cmd CreateVendorCommand) (*catalog.Vendor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.Is(kernel.Vendor) && !actor.Is(kernel.Admin) {
		return nil, ErrCreateVendorForbidden
	}

	vendor, err := catalog.NewVendor(actor.ID(), cmd.Name(), cmd.Description(), cmd.Location())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VendorRepository().Add(ctx, vendor); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return vendor, nil
}
