package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListVendorsQueryHandler struct {
	db *gorm.DB
}

func NewListVendorsQueryHandler(db *gorm.DB) ListVendorsQueryHandler {
	return ListVendorsQueryHandler{db: db}
}

// Handle lists vendors without their menus; GetVendor returns a vendor with its menu.
func (h ListVendorsQueryHandler) Handle(ctx context.Context, query ListVendorsQuery) (VendorPage, error) {
	if err := query.Validate(); err != nil {
		return VendorPage{}, err
	}

	where := sq.And{}
	if query.Search() != "" {
		where = append(where, textSearch(query.Search()))
	}
	if r := query.MinRating(); r != nil {
		where = append(where, sq.GtOrEq{"average_rating": *r})
	}

	total, err := countRows(ctx, h.db, sq.Select("COUNT(*)").From("vendors").Where(where))
	if err != nil {
		return VendorPage{}, err
	}

	page := query.Page()
	vendors, err := loadVendors(ctx, h.db, sq.Select(vendorColumns...).
		From("vendors").
		Where(where).
		OrderBy("average_rating DESC", "created_at DESC", "id").
		Limit(page.limit()).
		Offset(page.offset()))
	if err != nil {
		return VendorPage{}, err
	}

	return VendorPage{
		Vendors:    vendors,
		Total:      total,
		TotalPages: page.totalPages(total),
		Page:       page.Number(),
	}, nil
}
