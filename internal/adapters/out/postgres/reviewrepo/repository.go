package reviewrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReviewDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"rating":     dto.Rating,
		"comment":    dto.Comment,
		"images":     dto.Images,
		"updated_at": dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&ReviewDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", id.String())
	}

	return nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormReviewRepository) Exists(
	ctx context.Context,
	customerID, vendorID kernel.UUID,
	menuItemID *kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("customer_id = ? AND vendor_id = ?", customerID.Bytes(), vendorID.Bytes())

	if menuItemID == nil {
		query = query.Where("menu_item_id IS NULL")
	} else {
		query = query.Where("menu_item_id = ?", menuItemID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormReviewRepository) ListRatings(ctx context.Context, vendorID kernel.UUID) ([]review.Rating, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var values []int
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("vendor_id = ?", vendorID.Bytes()).
		Pluck("rating", &values).Error
	if err != nil {
		return nil, err
	}

	ratings := make([]review.Rating, 0, len(values))
	for _, v := range values {
		rating, ratingErr := review.NewRating(v)
		if ratingErr != nil {
			return nil, ratingErr
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}
