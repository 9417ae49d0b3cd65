package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetVendorQueryIsNotConstructed = errors.New("GetVendorQuery must be created via NewGetVendorQuery constructor")

// GetVendorQuery reads one vendor with its full menu. Public.
type GetVendorQuery struct {
	vendorID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetVendorQuery(vendorID kernel.UUID) (GetVendorQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorQuery{}, err
	}
	return GetVendorQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVendorQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorQueryIsNotConstructed)
}

func (q GetVendorQuery) VendorID() kernel.UUID { return q.vendorID }
