// Package ports defines the contracts between the application core and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items and delivery address snapshot.
type OrderRepository interface {
	// Add persists a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites the stored status axes. Last write wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// HasDeliveredFromVendor reports whether the customer has at least one
	// delivered order from the vendor.
	HasDeliveredFromVendor(ctx context.Context, customerID, vendorID kernel.UUID) (bool, error)

	// DeleteCreatedBefore removes orders created before cutoff together with
	// their line items and returns how many orders were removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
