package reviewrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ReviewDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	VendorID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	MenuItemID *uuid.UUID     `gorm:"type:uuid"`
	Rating     int            `gorm:"not null"`
	Comment    string         `gorm:"type:text;not null;default:''"`
	Images     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	var menuItemID *uuid.UUID
	if id := r.MenuItemID(); id != nil {
		raw := uuid.UUID(id.Bytes())
		menuItemID = &raw
	}

	return ReviewDTO{
		ID:         r.ID().Bytes(),
		CustomerID: r.CustomerID().Bytes(),
		VendorID:   r.VendorID().Bytes(),
		MenuItemID: menuItemID,
		Rating:     r.Rating().Value(),
		Comment:    r.Comment(),
		Images:     pq.StringArray(r.Images()),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var menuItemID *kernel.UUID
	if dto.MenuItemID != nil {
		parsed, idErr := kernel.UUIDFromBytes(dto.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		menuItemID = &parsed
	}

	rating, err := review.NewRating(dto.Rating)
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id, customerID, vendorID, menuItemID, rating, dto.Comment, dto.Images, dto.CreatedAt, dto.UpdatedAt,
	)
}
