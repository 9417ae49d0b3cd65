package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

var (
	ErrItemNotFound     = errs.NewValueIsInvalidError("menu item not found")
	ErrItemUnavailable  = errs.NewValueIsInvalidError("menu item is unavailable")
	ErrMixedVendorOrder = errs.NewValueIsInvalidError("cart spans more than one vendor")
)

// CartLine is one requested menu item in a cart.
type CartLine struct {
	MenuItemID kernel.UUID
	Quantity   int
	Note       string
}

// CartPricer turns cart lines into order line items, snapshotting each menu
// item's name and current price.
//
// Rules, checked in this order:
//   - every line must resolve to a menu item (ErrItemNotFound)
//   - every resolved item must be available (ErrItemUnavailable)
//   - all resolved items must belong to one vendor (ErrMixedVendorOrder)
//   - line subtotals and the cart total must fit in Money (errs.ErrValueIsOutOfRange)
type CartPricer struct{}

func NewCartPricer() CartPricer {
	return CartPricer{}
}

// Price returns the line items and the single vendor they belong to. menu
// holds the items the caller could resolve, keyed by id.
func (CartPricer) Price(lines []CartLine, menu map[kernel.UUID]*catalog.MenuItem) ([]order.LineItem, kernel.UUID, error) {
	if len(lines) == 0 {
		return nil, kernel.UUID{}, order.ErrItemsAreRequired
	}

	var (
		items   = make([]order.LineItem, 0, len(lines))
		vendors = make(map[kernel.UUID]struct{}, 1)
		vendor  kernel.UUID
	)

	for _, line := range lines {
		mi, ok := menu[line.MenuItemID]
		if !ok || mi == nil {
			return nil, kernel.UUID{}, fmt.Errorf("%w: %s", ErrItemNotFound, line.MenuItemID)
		}
		if !mi.IsAvailable() {
			return nil, kernel.UUID{}, fmt.Errorf("%w: %s", ErrItemUnavailable, mi.Name())
		}

		li, err := order.NewLineItem(mi.ID(), mi.Name(), mi.Price(), line.Quantity, line.Note)
		if err != nil {
			return nil, kernel.UUID{}, err
		}
		items = append(items, li)

		vendors[mi.VendorID()] = struct{}{}
		vendor = mi.VendorID()
	}

	if len(vendors) > 1 {
		return nil, kernel.UUID{}, ErrMixedVendorOrder
	}
	if _, err := order.TotalOf(items); err != nil {
		return nil, kernel.UUID{}, err
	}

	return items, vendor, nil
}
