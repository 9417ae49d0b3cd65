package queries

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type VendorAnalyticsQueryHandler struct {
	db *gorm.DB
}

func NewVendorAnalyticsQueryHandler(db *gorm.DB) VendorAnalyticsQueryHandler {
	return VendorAnalyticsQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown vendors and
// catalog.ErrNotVendorOwner when a vendor reads someone else's analytics.
func (h VendorAnalyticsQueryHandler) Handle(ctx context.Context, query VendorAnalyticsQuery) (VendorAnalytics, error) {
	if err := query.Validate(); err != nil {
		return VendorAnalytics{}, err
	}

	vendors, err := loadVendors(ctx, h.db, sq.Select(vendorColumns...).
		From("vendors").
		Where(sq.Eq{"id": query.VendorID().Bytes()}))
	if err != nil {
		return VendorAnalytics{}, err
	}
	if len(vendors) == 0 {
		return VendorAnalytics{}, errs.NewObjectNotFoundError("vendor", query.VendorID().String())
	}

	vendor := vendors[0]
	if actor := query.Actor(); !actor.Is(kernel.Admin) && !actor.IsSelf(vendor.OwnerID) {
		return VendorAnalytics{}, catalog.ErrNotVendorOwner
	}

	analytics := VendorAnalytics{
		VendorID:      vendor.ID,
		Name:          vendor.Name,
		AverageRating: vendor.AverageRating,
		TotalReviews:  vendor.TotalReviews,
	}

	delivered := order.Delivered.String()
	statsSQL, statsArgs, err := sq.Select("COUNT(*)").
		Column(sq.Expr("COUNT(*) FILTER (WHERE status = ?)", delivered)).
		Column(sq.Expr("COUNT(*) FILTER (WHERE status IN (?, ?, ?))",
			order.Ordered.String(), order.Preparing.String(), order.OutForDelivery.String())).
		Column(sq.Expr("COALESCE(SUM(total) FILTER (WHERE status = ?), 0)::bigint", delivered)).
		From("orders").
		Where(sq.Eq{"vendor_id": query.VendorID().Bytes()}).
		ToSql()
	if err != nil {
		return VendorAnalytics{}, err
	}

	err = h.db.WithContext(ctx).Raw(statsSQL, statsArgs...).Row().Scan(
		&analytics.TotalOrders, &analytics.CompletedOrders, &analytics.PendingOrders, &analytics.Revenue)
	if err != nil {
		return VendorAnalytics{}, err
	}

	reviewsSQL, reviewsArgs, err := sq.Select(reviewColumns...).
		From("reviews").
		Where(sq.Eq{"vendor_id": query.VendorID().Bytes()}).
		OrderBy("created_at DESC").
		Limit(RecentReviewsLimit).
		ToSql()
	if err != nil {
		return VendorAnalytics{}, err
	}

	if analytics.RecentReviews, err = loadReviews(ctx, h.db, reviewsSQL, reviewsArgs); err != nil {
		return VendorAnalytics{}, err
	}

	return analytics, nil
}
