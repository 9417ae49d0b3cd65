package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// NoteMaxLength bounds the free-text note of a line item, in characters.
const NoteMaxLength = 200

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one cart line. The unit price is captured at placement so the
// order total stays fixed when the menu changes.
type LineItem struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	subtotal   kernel.Money
	note       string
	guard      guard.ConstructorGuard
}

func NewLineItem(menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int, note string) (LineItem, error) {
	li := LineItem{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		li.setMenuItemID(menuItemID),
		li.setUnitPrice(unitPrice),
		li.setQuantity(quantity),
		li.setNote(note),
	); err != nil {
		return LineItem{}, err
	}

	subtotal, err := li.unitPrice.Times(li.quantity)
	if err != nil {
		return LineItem{}, fmt.Errorf("subtotal of %s: %w", li.name, err)
	}
	li.subtotal = subtotal

	return li, nil
}

func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) MenuItemID() kernel.UUID { return li.menuItemID }
func (li LineItem) Name() string            { return li.name }
func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }
func (li LineItem) Quantity() int           { return li.quantity }
func (li LineItem) Note() string            { return li.note }

// Subtotal is unit price × quantity.
func (li LineItem) Subtotal() kernel.Money { return li.subtotal }

// TotalOf sums the subtotals of items, failing with a ValueIsOutOfRange error
// instead of wrapping around.
func TotalOf(items []LineItem) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, item := range items {
		var err error
		if total, err = total.Add(item.subtotal); err != nil {
			return kernel.Money{}, fmt.Errorf("order total: %w", err)
		}
	}
	return total, nil
}

func (li *LineItem) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.menuItemID = id
	return nil
}

func (li *LineItem) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setNote(note string) error {
	note = strings.TrimSpace(note)
	if n := utf8.RuneCountInString(note); n > NoteMaxLength {
		return errs.NewValueIsOutOfRangeError("note length", n, 0, NoteMaxLength)
	}
	li.note = note
	return nil
}
