package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteAgentCommandIsNotConstructed = errors.New(
	"DeleteAgentCommand must be created via NewDeleteAgentCommand constructor",
)

type DeleteAgentCommand struct {
	actor   kernel.Actor
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAgentCommand(actor kernel.Actor, agentID kernel.UUID) (DeleteAgentCommand, error) {
	if err := errors.Join(actor.Validate(), agentID.Validate()); err != nil {
		return DeleteAgentCommand{}, err
	}

	return DeleteAgentCommand{
		actor:   actor,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteAgentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAgentCommandIsNotConstructed)
}

func (c DeleteAgentCommand) Actor() kernel.Actor  { return c.actor }
func (c DeleteAgentCommand) AgentID() kernel.UUID { return c.agentID }
