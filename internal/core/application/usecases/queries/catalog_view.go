package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorView is the public read model of a vendor with its cached rating.
type VendorView struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Name          string
	Description   string
	Location      *LocationView
	AverageRating float64
	TotalReviews  int
	MenuItems     []MenuItemView
	CreatedAt     time.Time
}

type MenuItemView struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	Name        string
	Description string
	Price       int64
	Available   bool
}

type LocationView struct {
	Lon float64
	Lat float64
}

type VendorPage struct {
	Vendors    []VendorView
	Total      int64
	TotalPages int
	Page       int
}

type MenuItemPage struct {
	MenuItems  []MenuItemView
	Total      int64
	TotalPages int
	Page       int
}

// maxSearchLength bounds free-text search input, in bytes.
const maxSearchLength = 100

var (
	vendorColumns = []string{
		"id", "owner_id", "name", "description", "location_lon", "location_lat",
		"average_rating", "total_reviews", "created_at",
	}
	menuItemColumns = []string{"id", "vendor_id", "name", "description", "price", "available"}
)

// containsPattern turns free text into an ILIKE pattern matching it literally.
func containsPattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)
	return "%" + escaped + "%"
}

// textSearch matches search against name or description, case-insensitively.
func textSearch(search string) sq.Sqlizer {
	pattern := containsPattern(search)
	return sq.Or{
		sq.ILike{"name": pattern},
		sq.ILike{"description": pattern},
	}
}

func countRows(ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	err = db.WithContext(ctx).Raw(query, args...).Scan(&total).Error
	return total, err
}

func loadVendors(ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) ([]VendorView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]VendorView, 0)
	for rows.Next() {
		var (
			view        VendorView
			id, ownerID uuid.UUID
			lon, lat    sql.NullFloat64
		)

		err = rows.Scan(&id, &ownerID, &view.Name, &view.Description, &lon, &lat,
			&view.AverageRating, &view.TotalReviews, &view.CreatedAt)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		view.Location = locationOf(lon, lat)
		view.MenuItems = make([]MenuItemView, 0)

		vendors = append(vendors, view)
	}

	return vendors, rows.Err()
}

func loadMenuItems(ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) ([]MenuItemView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		var (
			view         MenuItemView
			id, vendorID uuid.UUID
		)

		if err = rows.Scan(&id, &vendorID, &view.Name, &view.Description, &view.Price, &view.Available); err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		items = append(items, view)
	}

	return items, rows.Err()
}

func locationOf(lon, lat sql.NullFloat64) *LocationView {
	if !lon.Valid || !lat.Valid {
		return nil
	}
	return &LocationView{Lon: lon.Float64, Lat: lat.Float64}
}
