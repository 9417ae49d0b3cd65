package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler applies an agent's delivery report. The
// order must be in the agent's current assignment set. On delivered the order
// is completed and leaves the set, so a second report fails with
// agent.ErrOrderNotAssigned.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	a, o, err := loadAgentAndOrder(ctx, uow, cmd.AgentID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = a.AuthorizeSelf(cmd.Actor()); err != nil {
		return err
	}

	if err = a.ValidateAssigned(o.ID()); err != nil {
		return err
	}

	if err = o.UpdateDelivery(cmd.Status()); err != nil {
		return err
	}

	if cmd.Status() == order.DeliveryDelivered {
		if err = a.Complete(o.ID()); err != nil {
			return err
		}
		if err = uow.AgentRepository().Update(ctx, a); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
