package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
)

// VendorRepository defines the persistence contract for vendors.
type VendorRepository interface {
	Add(ctx context.Context, vendor *catalog.Vendor) error

	// Update stores the vendor profile and its cached rating fields.
	Update(ctx context.Context, vendor *catalog.Vendor) error

	Get(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error)
}

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, item *catalog.MenuItem) error
	Update(ctx context.Context, item *catalog.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// GetMany resolves the given ids. Unknown ids are absent from the result
	// rather than reported as errors.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*catalog.MenuItem, error)
}
