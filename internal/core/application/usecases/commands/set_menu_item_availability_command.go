package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrSetMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetMenuItemAvailabilityCommand must be created via NewSetMenuItemAvailabilityCommand constructor",
)

// SetMenuItemAvailabilityCommand toggles whether an item can be ordered.
type SetMenuItemAvailabilityCommand struct {
	actor      kernel.Actor
	menuItemID kernel.UUID
	available  bool

	guard guard.ConstructorGuard
}

func NewSetMenuItemAvailabilityCommand(
	actor kernel.Actor,
	menuItemID kernel.UUID,
	available bool,
) (SetMenuItemAvailabilityCommand, error) {
	if err := errors.Join(actor.Validate(), menuItemID.Validate()); err != nil {
		return SetMenuItemAvailabilityCommand{}, err
	}

	return SetMenuItemAvailabilityCommand{
		actor:      actor,
		menuItemID: menuItemID,
		available:  available,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemAvailabilityCommandIsNotConstructed)
}

func (c SetMenuItemAvailabilityCommand) Actor() kernel.Actor     { return c.actor }
func (c SetMenuItemAvailabilityCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c SetMenuItemAvailabilityCommand) Available() bool         { return c.available }
