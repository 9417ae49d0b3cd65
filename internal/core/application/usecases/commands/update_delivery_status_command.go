package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is an agent progress report: out_for_delivery or delivered.
type UpdateDeliveryStatusCommand struct {
	actor   kernel.Actor
	agentID kernel.UUID
	orderID kernel.UUID
	status  order.DeliveryStatus

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	actor kernel.Actor,
	agentID, orderID kernel.UUID,
	status order.DeliveryStatus,
) (UpdateDeliveryStatusCommand, error) {
	var statusErr error
	if !status.IsAgentTarget() {
		statusErr = order.ErrInvalidDeliveryStatus
	}

	if err := errors.Join(actor.Validate(), agentID.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		actor:   actor,
		agentID: agentID,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) Actor() kernel.Actor          { return c.actor }
func (c UpdateDeliveryStatusCommand) AgentID() kernel.UUID         { return c.agentID }
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID         { return c.orderID }
func (c UpdateDeliveryStatusCommand) Status() order.DeliveryStatus { return c.status }
