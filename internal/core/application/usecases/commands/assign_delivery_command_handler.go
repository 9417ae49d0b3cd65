package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

var ErrAssignDeliveryForbidden = errs.NewForbiddenError("only admins and the order's vendor can assign deliveries")

// AssignDeliveryCommandHandler adds a pending order to an agent's assignment
// set without touching the order's status axes. Assigning the same order to
// the same agent twice is a no-op.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAssignDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Is(kernel.Admin) && !actor.Is(kernel.Vendor) {
		return ErrAssignDeliveryForbidden
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

	if actor.Is(kernel.Vendor) {
		vendor, vendorErr := uow.VendorRepository().Get(ctx, o.VendorID())
		if vendorErr != nil {
			return vendorErr
		}
		if err = vendor.AuthorizeOwner(actor); err != nil {
			return err
		}
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

	if err = uow.AgentRepository().Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func loadAgentAndOrder(
	ctx context.Context,
	uow DeliveryUoW,
	agentID, orderID kernel.UUID,
) (*agent.DeliveryAgent, *order.Order, error) {
	a, err := uow.AgentRepository().Get(ctx, agentID)
	if err != nil {
		return nil, nil, err
	}

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return a, o, nil
}

// ensureNotHeldByOther keeps an order in at most one assignment set.
func ensureNotHeldByOther(
	ctx context.Context,
	repo ports.AgentRepository,
	a *agent.DeliveryAgent,
	orderID kernel.UUID,
) error {
	holder, err := repo.GetByAssignedOrder(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !holder.IsEqual(a) {
		return agent.ErrAssignedToOtherAgent
	}
	return nil
}
