package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) (MenuItemPage, error) {
	if err := query.Validate(); err != nil {
		return MenuItemPage{}, err
	}

	filter := query.Filter()
	where := sq.And{}
	if filter.VendorID != nil {
		where = append(where, sq.Eq{"vendor_id": filter.VendorID.Bytes()})
	}
	if filter.Available != nil {
		where = append(where, sq.Eq{"available": *filter.Available})
	}
	if filter.Search != "" {
		where = append(where, textSearch(filter.Search))
	}

	total, err := countRows(ctx, h.db, sq.Select("COUNT(*)").From("menu_items").Where(where))
	if err != nil {
		return MenuItemPage{}, err
	}

	page := query.Page()
	items, err := loadMenuItems(ctx, h.db, sq.Select(menuItemColumns...).
		From("menu_items").
		Where(where).
		OrderBy("name", "id").
		Limit(page.limit()).
		Offset(page.offset()))
	if err != nil {
		return MenuItemPage{}, err
	}

	return MenuItemPage{
		MenuItems:  items,
		Total:      total,
		TotalPages: page.totalPages(total),
		Page:       page.Number(),
	}, nil
}
