package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's checkout of a single-vendor cart.
//
// Example:
//
//	lines := []services.CartLine{
//	    {MenuItemID: dosaID, Quantity: 2, Note: "extra chutney"},
//	    {MenuItemID: coffeeID, Quantity: 1},
//	}
//	cmd, err := NewPlaceOrderCommand(actor, lines, address)
//	if err != nil {
//	    return fmt.Errorf("invalid cart: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	actor   kernel.Actor
	lines   []services.CartLine
	address kernel.Address

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	actor kernel.Actor,
	lines []services.CartLine,
	address kernel.Address,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		address.Validate(),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.address = address
	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Actor() kernel.Actor     { return c.actor }
func (c PlaceOrderCommand) Address() kernel.Address { return c.address }

func (c PlaceOrderCommand) Lines() []services.CartLine {
	out := make([]services.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// MenuItemIDs lists the distinct menu items referenced by the cart.
func (c PlaceOrderCommand) MenuItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.MenuItemID]; ok {
			continue
		}
		seen[l.MenuItemID] = struct{}{}
		ids = append(ids, l.MenuItemID)
	}
	return ids
}

func (c *PlaceOrderCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return order.ErrItemsAreRequired
	}

	for i, l := range lines {
		if err := l.MenuItemID.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	c.lines = make([]services.CartLine, len(lines))
	copy(c.lines, lines)
	return nil
}
