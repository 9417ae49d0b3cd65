package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// DeleteAgentCommandHandler removes an agent that carries no active orders.
type DeleteAgentCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewDeleteAgentCommandHandler(uowFactory DeliveryUoWFactory) DeleteAgentCommandHandler {
	return DeleteAgentCommandHandler{uowFactory: uowFactory}
}

func (h DeleteAgentCommandHandler) Handle(ctx context.Context, cmd DeleteAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(kernel.Admin) {
		return ErrAgentAdminOnly
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

	if err = a.ValidateRemovable(); err != nil {
		return err
	}

	if err = uow.AgentRepository().Delete(ctx, a.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
