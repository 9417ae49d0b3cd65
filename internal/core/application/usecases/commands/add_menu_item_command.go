package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("name")
)

// AddMenuItemCommand adds an available item to a vendor's menu.
type AddMenuItemCommand struct {
	actor       kernel.Actor
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(
	actor kernel.Actor,
	vendorID kernel.UUID,
	name, description string,
	price kernel.Money,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		vendorID.Validate(),
		price.Validate(),
		cmd.setName(name),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	cmd.actor = actor
	cmd.vendorID = vendorID
	cmd.price = price
	return cmd, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) Actor() kernel.Actor   { return c.actor }
func (c AddMenuItemCommand) VendorID() kernel.UUID { return c.vendorID }
func (c AddMenuItemCommand) Name() string          { return c.name }
func (c AddMenuItemCommand) Description() string   { return c.description }
func (c AddMenuItemCommand) Price() kernel.Money   { return c.price }

func (c *AddMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	c.name = name
	return nil
}
