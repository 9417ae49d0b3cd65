package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCreateAgentCommandIsNotConstructed = errors.New(
	"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
)

// CreateAgentCommand registers the delivery agent profile of user userID.
type CreateAgentCommand struct {
	actor    kernel.Actor
	userID   kernel.UUID
	name     string
	contact  string
	location *kernel.Point

	guard guard.ConstructorGuard
}

func NewCreateAgentCommand(
	actor kernel.Actor,
	userID kernel.UUID,
	name, contact string,
	location *kernel.Point,
) (CreateAgentCommand, error) {
	name, contact = strings.TrimSpace(name), strings.TrimSpace(contact)

	var nameErr, contactErr error
	if name == "" {
		nameErr = agent.ErrNameIsRequired
	}
	if contact == "" {
		contactErr = agent.ErrContactIsRequired
	}

	if err := errors.Join(actor.Validate(), userID.Validate(), nameErr, contactErr); err != nil {
		return CreateAgentCommand{}, err
	}

	return CreateAgentCommand{
		actor:    actor,
		userID:   userID,
		name:     name,
		contact:  contact,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

func (c CreateAgentCommand) Actor() kernel.Actor     { return c.actor }
func (c CreateAgentCommand) UserID() kernel.UUID     { return c.userID }
func (c CreateAgentCommand) Name() string            { return c.name }
func (c CreateAgentCommand) Contact() string         { return c.contact }
func (c CreateAgentCommand) Location() *kernel.Point { return c.location }
