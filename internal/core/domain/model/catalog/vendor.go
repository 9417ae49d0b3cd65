package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrVendorIsNotConstructed = errors.New("Vendor must be created via NewVendor or RestoreVendor constructor")
	ErrVendorNameIsRequired   = errs.NewValueIsRequiredError("name")
	ErrNotVendorOwner         = errs.NewForbiddenError("actor does not own the vendor")
)

// Vendor is a restaurant owned by a vendor user.
type Vendor struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	name          string
	description   string
	location      *kernel.Point
	averageRating float64
	totalReviews  int
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

// NewVendor registers a vendor with no reviews yet.
func NewVendor(ownerID kernel.UUID, name, description string, location *kernel.Point) (*Vendor, error) {
	v := &Vendor{
		id:          kernel.NewUUID(),
		description: strings.TrimSpace(description),
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setOwner(ownerID),
		v.setName(name),
		v.setLocation(location),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVendor rebuilds a vendor from storage, rating fields included.
func RestoreVendor(
	id, ownerID kernel.UUID,
	name, description string,
	location *kernel.Point,
	averageRating float64,
	totalReviews int,
	createdAt time.Time,
) (*Vendor, error) {
	v := &Vendor{
		description: description,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		v.setOwner(ownerID),
		v.setName(name),
		v.setLocation(location),
		v.ApplyRating(averageRating, totalReviews),
	); err != nil {
		return nil, err
	}
	v.id = id

	return v, nil
}

func (v *Vendor) Validate() error {
	if v == nil {
		return ErrVendorIsNotConstructed
	}
	return v.guard.Validate(ErrVendorIsNotConstructed)
}

func (v *Vendor) ID() kernel.UUID               { return v.id }
func (v *Vendor) OwnerID() kernel.UUID          { return v.ownerID }
func (v *Vendor) Name() string                  { return v.name }
func (v *Vendor) Description() string           { return v.description }
func (v *Vendor) Location() *kernel.Point       { return v.location }
func (v *Vendor) AverageRating() float64        { return v.averageRating }
func (v *Vendor) TotalReviews() int             { return v.totalReviews }
func (v *Vendor) CreatedAt() time.Time          { return v.createdAt }
func (v *Vendor) IsOwnedBy(id kernel.UUID) bool { return v.ownerID.IsEqual(id) }

// AuthorizeOwner passes admins and the vendor's owner.
func (v *Vendor) AuthorizeOwner(actor kernel.Actor) error {
	if actor.Is(kernel.Admin) {
		return nil
	}
	if actor.Is(kernel.Vendor) && v.IsOwnedBy(actor.ID()) {
		return nil
	}
	return ErrNotVendorOwner
}

// ApplyRating overwrites the derived rating fields.
func (v *Vendor) ApplyRating(averageRating float64, totalReviews int) error {
	if averageRating < 0 || averageRating > 5 {
		return errs.NewValueIsOutOfRangeError("averageRating", averageRating, 0, 5)
	}
	if totalReviews < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalReviews", fmt.Errorf("%d is negative", totalReviews))
	}

	v.averageRating = averageRating
	v.totalReviews = totalReviews
	return nil
}

func (v *Vendor) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	v.ownerID = ownerID
	return nil
}

func (v *Vendor) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrVendorNameIsRequired
	}
	v.name = name
	return nil
}

func (v *Vendor) setLocation(location *kernel.Point) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	v.location = location
	return nil
}
