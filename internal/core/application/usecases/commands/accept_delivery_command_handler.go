package commands

import (
	"context"
)

// AcceptDeliveryCommandHandler lets an agent take a pending order: the order
// joins the agent's set and both status and deliveryStatus become
// out_for_delivery.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	if err = o.ValidateDeliveryPending(); err != nil {
		return err
	}

	if err = ensureNotHeldByOther(ctx, uow.AgentRepository(), a, o.ID()); err != nil {
		return err
	}

	if err = a.Assign(o.ID()); err != nil {
		return err
	}

	if err = o.StartDelivery(); err != nil {
		return err
	}

	if err = uow.AgentRepository().Update(ctx, a); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
