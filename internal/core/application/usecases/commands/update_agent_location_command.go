package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateAgentLocationCommandIsNotConstructed = errors.New(
	"UpdateAgentLocationCommand must be created via NewUpdateAgentLocationCommand constructor",
)

type UpdateAgentLocationCommand struct {
	actor    kernel.Actor
	agentID  kernel.UUID
	location kernel.Point

	guard guard.ConstructorGuard
}

func NewUpdateAgentLocationCommand(
	actor kernel.Actor,
	agentID kernel.UUID,
	location kernel.Point,
) (UpdateAgentLocationCommand, error) {
	if err := errors.Join(actor.Validate(), agentID.Validate(), location.Validate()); err != nil {
		return UpdateAgentLocationCommand{}, err
	}

	return UpdateAgentLocationCommand{
		actor:    actor,
		agentID:  agentID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAgentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentLocationCommandIsNotConstructed)
}

func (c UpdateAgentLocationCommand) Actor() kernel.Actor    { return c.actor }
func (c UpdateAgentLocationCommand) AgentID() kernel.UUID   { return c.agentID }
func (c UpdateAgentLocationCommand) Location() kernel.Point { return c.location }
