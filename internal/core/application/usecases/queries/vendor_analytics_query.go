package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// RecentReviewsLimit is how many of the newest reviews analytics include.
const RecentReviewsLimit = 5

var (
	ErrVendorAnalyticsQueryIsNotConstructed = errors.New(
		"VendorAnalyticsQuery must be created via NewVendorAnalyticsQuery constructor",
	)
	ErrVendorAnalyticsForbidden = errs.NewForbiddenError("only the vendor owner and admins may read vendor analytics")
)

// VendorAnalyticsQuery summarises a vendor's orders, revenue and latest reviews.
type VendorAnalyticsQuery struct {
	actor    kernel.Actor
	vendorID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewVendorAnalyticsQuery(actor kernel.Actor, vendorID kernel.UUID) (VendorAnalyticsQuery, error) {
	if err := errors.Join(actor.Validate(), vendorID.Validate()); err != nil {
		return VendorAnalyticsQuery{}, err
	}
	if !actor.Is(kernel.Vendor) && !actor.Is(kernel.Admin) {
		return VendorAnalyticsQuery{}, ErrVendorAnalyticsForbidden
	}

	return VendorAnalyticsQuery{actor: actor, vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

func (q VendorAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrVendorAnalyticsQueryIsNotConstructed)
}

func (q VendorAnalyticsQuery) Actor() kernel.Actor   { return q.actor }
func (q VendorAnalyticsQuery) VendorID() kernel.UUID { return q.vendorID }

// VendorAnalytics counts orders by outcome. Revenue sums the totals of
// delivered orders only.
type VendorAnalytics struct {
	VendorID        kernel.UUID
	Name            string
	AverageRating   float64
	TotalReviews    int
	TotalOrders     int64
	CompletedOrders int64
	PendingOrders   int64
	Revenue         int64
	RecentReviews   []ReviewView
}
