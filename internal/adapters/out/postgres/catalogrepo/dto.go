package catalogrepo

import (
	"time"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type VendorDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name          string      `gorm:"type:varchar(255);not null"`
	Description   string      `gorm:"type:text;not null;default:''"`
	Location      LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	AverageRating float64     `gorm:"not null;default:0"`
	TotalReviews  int         `gorm:"not null;default:0"`
	CreatedAt     time.Time   `gorm:"not null"`
}

func (VendorDTO) TableName() string {
	return "vendors"
}

// LocationDTO holds an optional point; both columns are null when absent.
type LocationDTO struct {
	Lon *float64
	Lat *float64
}

type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Price       int64     `gorm:"not null"`
	Available   bool      `gorm:"not null;default:true"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func locationFromDomain(p *kernel.Point) LocationDTO {
	if p == nil {
		return LocationDTO{}
	}
	lon, lat := p.Lon(), p.Lat()
	return LocationDTO{Lon: &lon, Lat: &lat}
}

func locationToDomain(dto LocationDTO) (*kernel.Point, error) {
	if dto.Lon == nil || dto.Lat == nil {
		return nil, nil
	}
	p, err := kernel.NewPoint(*dto.Lon, *dto.Lat)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func vendorFromDomain(v *catalog.Vendor) VendorDTO {
	return VendorDTO{
		ID:            v.ID().Bytes(),
		OwnerID:       v.OwnerID().Bytes(),
		Name:          v.Name(),
		Description:   v.Description(),
		Location:      locationFromDomain(v.Location()),
		AverageRating: v.AverageRating(),
		TotalReviews:  v.TotalReviews(),
		CreatedAt:     v.CreatedAt(),
	}
}

func vendorToDomain(dto VendorDTO) (*catalog.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	location, err := locationToDomain(dto.Location)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreVendor(
		id, ownerID, dto.Name, dto.Description, location, dto.AverageRating, dto.TotalReviews, dto.CreatedAt,
	)
}

func menuItemFromDomain(item *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		VendorID:    item.VendorID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price().Amount(),
		Available:   item.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(id, vendorID, dto.Name, dto.Description, price, dto.Available)
}
