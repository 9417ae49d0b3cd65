package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/guard"
)

var ErrListVendorReviewsQueryIsNotConstructed = errors.New(
	"ListVendorReviewsQuery must be created via NewListVendorReviewsQuery constructor",
)

// ListVendorReviewsQuery pages through a vendor's reviews, newest first,
// optionally keeping only one star rating.
type ListVendorReviewsQuery struct {
	vendorID kernel.UUID
	rating   *review.Rating
	page     Page
	guard    guard.ConstructorGuard
}

func NewListVendorReviewsQuery(vendorID kernel.UUID, rating *review.Rating, page Page) (ListVendorReviewsQuery, error) {
	var ratingErr error
	if rating != nil {
		ratingErr = rating.Validate()
	}

	if err := errors.Join(vendorID.Validate(), ratingErr, page.Validate()); err != nil {
		return ListVendorReviewsQuery{}, err
	}

	return ListVendorReviewsQuery{
		vendorID: vendorID,
		rating:   rating,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListVendorReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListVendorReviewsQueryIsNotConstructed)
}

func (q ListVendorReviewsQuery) VendorID() kernel.UUID  { return q.vendorID }
func (q ListVendorReviewsQuery) Rating() *review.Rating { return q.rating }
func (q ListVendorReviewsQuery) Page() Page             { return q.page }

type ReviewView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	VendorID   kernel.UUID
	MenuItemID *kernel.UUID
	Rating     int
	Comment    string
	Images     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReviewPage struct {
	Reviews    []ReviewView
	Total      int64
	TotalPages int
	Page       int
}
