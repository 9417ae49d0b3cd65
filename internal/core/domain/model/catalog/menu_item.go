package catalog

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem constructor")
	ErrMenuItemNameIsRequired   = errs.NewValueIsRequiredError("menuItem.name")
)

// MenuItem is a priced dish of one vendor. Placement only accepts items whose
// availability flag is set.
type MenuItem struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money
	available   bool
	guard       guard.ConstructorGuard
}

// NewMenuItem adds an available item to a vendor's menu.
func NewMenuItem(vendorID kernel.UUID, name, description string, price kernel.Money) (*MenuItem, error) {
	return RestoreMenuItem(kernel.NewUUID(), vendorID, name, description, price, true)
}

func RestoreMenuItem(
	id, vendorID kernel.UUID,
	name, description string,
	price kernel.Money,
	available bool,
) (*MenuItem, error) {
	item := &MenuItem{
		description: strings.TrimSpace(description),
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setVendorID(vendorID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID       { return m.id }
func (m *MenuItem) VendorID() kernel.UUID { return m.vendorID }
func (m *MenuItem) Name() string          { return m.name }
func (m *MenuItem) Description() string   { return m.description }
func (m *MenuItem) Price() kernel.Money   { return m.price }
func (m *MenuItem) IsAvailable() bool     { return m.available }

func (m *MenuItem) SetAvailability(available bool) {
	m.available = available
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	m.vendorID = vendorID
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}
