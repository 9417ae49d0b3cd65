package commands

import (
	"context"
)

// UpdateAgentLocationCommandHandler records an agent's self-reported position.
type UpdateAgentLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewUpdateAgentLocationCommandHandler(uowFactory DeliveryUoWFactory) UpdateAgentLocationCommandHandler {
	return UpdateAgentLocationCommandHandler{uowFactory: uowFactory}
}

func (h UpdateAgentLocationCommandHandler) Handle(ctx context.Context, cmd UpdateAgentLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = a.AuthorizeSelf(cmd.Actor()); err != nil {
		return err
	}

	if err = a.Relocate(cmd.Location()); err != nil {
		return err
	}

	if err = uow.AgentRepository().Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
