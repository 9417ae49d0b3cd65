package catalogrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormVendorRepository) Add(ctx context.Context, aggregate *catalog.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vendorFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so a vendor without location clears the stored one.
func (r *GormVendorRepository) Update(ctx context.Context, aggregate *catalog.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vendorFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VendorDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendor", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, err
	}

	return vendorToDomain(dto)
}
