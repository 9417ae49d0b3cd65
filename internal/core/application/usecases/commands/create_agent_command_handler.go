package commands

import (
	"context"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrAgentAdminOnly = errs.NewForbiddenError("only admins can manage delivery agents")

// CreateAgentCommandHandler stores a new agent with an empty assignment set.
type CreateAgentCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateAgentCommandHandler(uowFactory DeliveryUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{uowFactory: uowFactory}
}

func (h CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) (*agent.DeliveryAgent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(kernel.Admin) {
		return nil, ErrAgentAdminOnly
	}

	a, err := agent.NewDeliveryAgent(cmd.UserID(), cmd.Name(), cmd.Contact(), cmd.Location())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
