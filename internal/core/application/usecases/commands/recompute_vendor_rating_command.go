package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRecomputeVendorRatingCommandIsNotConstructed = errors.New(
	"RecomputeVendorRatingCommand must be created via NewRecomputeVendorRatingCommand constructor",
)

// RecomputeVendorRatingCommand rebuilds a vendor's cached rating from its reviews.
type RecomputeVendorRatingCommand struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecomputeVendorRatingCommand(vendorID kernel.UUID) (RecomputeVendorRatingCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return RecomputeVendorRatingCommand{}, err
	}

	return RecomputeVendorRatingCommand{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RecomputeVendorRatingCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeVendorRatingCommandIsNotConstructed)
}

func (c RecomputeVendorRatingCommand) VendorID() kernel.UUID {
	return c.vendorID
}
