package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListVendorReviewsQueryHandler struct {
	db *gorm.DB
}

func NewListVendorReviewsQueryHandler(db *gorm.DB) ListVendorReviewsQueryHandler {
	return ListVendorReviewsQueryHandler{db: db}
}

func (h ListVendorReviewsQueryHandler) Handle(ctx context.Context, query ListVendorReviewsQuery) (ReviewPage, error) {
	if err := query.Validate(); err != nil {
		return ReviewPage{}, err
	}

	where := sq.Eq{"vendor_id": query.VendorID().Bytes()}
	if r := query.Rating(); r != nil {
		where["rating"] = r.Value()
	}

	countSQL, countArgs, err := sq.Select("COUNT(*)").From("reviews").Where(where).ToSql()
	if err != nil {
		return ReviewPage{}, err
	}

	var total int64
	if err = h.db.WithContext(ctx).Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		return ReviewPage{}, err
	}

	page := query.Page()
	listSQL, listArgs, err := sq.
		Select(reviewColumns...).
		From("reviews").
		Where(where).
		OrderBy("created_at DESC").
		Limit(page.limit()).
		Offset(page.offset()).
		ToSql()
	if err != nil {
		return ReviewPage{}, err
	}

	reviews, err := loadReviews(ctx, h.db, listSQL, listArgs)
	if err != nil {
		return ReviewPage{}, err
	}

	return ReviewPage{
		Reviews:    reviews,
		Total:      total,
		TotalPages: page.totalPages(total),
		Page:       page.Number(),
	}, nil
}

var reviewColumns = []string{
	"id", "customer_id", "vendor_id", "menu_item_id", "rating", "comment", "images", "created_at", "updated_at",
}

// loadReviews runs a select over reviewColumns.
func loadReviews(ctx context.Context, db *gorm.DB, query string, args []any) ([]ReviewView, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewView, 0)
	for rows.Next() {
		var (
			view                     ReviewView
			id, customerID, vendorID uuid.UUID
			menuItemID               uuid.NullUUID
			images                   pq.StringArray
		)

		err = rows.Scan(&id, &customerID, &vendorID, &menuItemID,
			&view.Rating, &view.Comment, &images, &view.CreatedAt, &view.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		if menuItemID.Valid {
			item, idErr := kernel.UUIDFromBytes(menuItemID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.MenuItemID = &item
		}
		view.Images = []string(images)
		if view.Images == nil {
			view.Images = make([]string, 0)
		}

		reviews = append(reviews, view)
	}

	return reviews, rows.Err()
}
