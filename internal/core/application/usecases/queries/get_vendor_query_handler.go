package queries

import (
	"context"

	"foodorder/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetVendorQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorQueryHandler(db *gorm.DB) GetVendorQueryHandler {
	return GetVendorQueryHandler{db: db}
}

func (h GetVendorQueryHandler) Handle(ctx context.Context, query GetVendorQuery) (VendorView, error) {
	if err := query.Validate(); err != nil {
		return VendorView{}, err
	}

	vendors, err := loadVendors(ctx, h.db, sq.Select(vendorColumns...).
		From("vendors").
		Where(sq.Eq{"id": query.VendorID().Bytes()}))
	if err != nil {
		return VendorView{}, err
	}
	if len(vendors) == 0 {
		return VendorView{}, errs.NewObjectNotFoundError("vendor", query.VendorID().String())
	}

	vendor := vendors[0]
	vendor.MenuItems, err = loadMenuItems(ctx, h.db, sq.Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"vendor_id": query.VendorID().Bytes()}).
		OrderBy("name", "id"))
	if err != nil {
		return VendorView{}, err
	}

	return vendor, nil
}
