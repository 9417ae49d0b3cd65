package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateVendorCommandIsNotConstructed = errors.New(
		"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
	)
	ErrVendorNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateVendorCommand registers a vendor owned by the acting user.
//
// Example:
//
//	cmd, err := NewCreateVendorCommand(actor, "Dosa Corner", "South Indian breakfast", &location)
//	if err != nil {
//	    return fmt.Errorf("invalid vendor data: %w", err)
//	}
//	vendor, err := handler.Handle(ctx, cmd)
type CreateVendorCommand struct {
	actor       kernel.Actor
	name        string
	description string
	location    *kernel.Point

	guard guard.ConstructorGuard
}

func NewCreateVendorCommand(
	actor kernel.Actor,
	name, description string,
	location *kernel.Point,
) (CreateVendorCommand, error) {
	cmd := CreateVendorCommand{
		description: strings.TrimSpace(description),
		location:    location,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setName(name),
	); err != nil {
		return CreateVendorCommand{}, err
	}

	return cmd, nil
}

func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

func (c CreateVendorCommand) Actor() kernel.Actor     { return c.actor }
func (c CreateVendorCommand) Name() string            { return c.name }
func (c CreateVendorCommand) Description() string     { return c.description }
func (c CreateVendorCommand) Location() *kernel.Point { return c.location }

func (c *CreateVendorCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateVendorCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrVendorNameIsRequired
	}
	c.name = name
	return nil
}
