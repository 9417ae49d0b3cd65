package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	Add(ctx context.Context, r *review.Review) error
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// Exists reports whether the customer already reviewed the vendor for the
	// given menu item. A nil menuItemID matches only reviews without a menu item.
	Exists(ctx context.Context, customerID, vendorID kernel.UUID, menuItemID *kernel.UUID) (bool, error)

	// ListRatings returns the ratings of every review of the vendor.
	ListRatings(ctx context.Context, vendorID kernel.UUID) ([]review.Rating, error)
}
