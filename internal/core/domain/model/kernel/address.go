package kernel

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is the delivery address snapshot copied into an order at placement.
// Later edits to the customer's saved addresses never reach an existing order.
type Address struct {
	label string
	line1 string
	line2 string
	city  string
	zip   string
	guard guard.ConstructorGuard
}

// NewAddress requires label, line1, city and zip; line2 is optional.
func NewAddress(label, line1, line2, city, zip string) (Address, error) {
	a := Address{
		line2: strings.TrimSpace(line2),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("address.label", label, &a.label),
		required("address.line1", line1, &a.line1),
		required("address.city", city, &a.city),
		required("address.zip", zip, &a.zip),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Label() string { return a.label }
func (a Address) Line1() string { return a.line1 }
func (a Address) Line2() string { return a.line2 }
func (a Address) City() string  { return a.city }
func (a Address) Zip() string   { return a.zip }

func required(param, value string, dst *string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}

	*dst = value
	return nil
}
