package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand is the vendor moving an order through preparation
// and delivery. Only preparing, out_for_delivery and delivered are accepted.
type AdvanceOrderStatusCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	status order.Status,
) (AdvanceOrderStatusCommand, error) {
	var statusErr error
	if !status.IsAdvanceTarget() {
		statusErr = order.ErrInvalidStatus
	}

	if err := errors.Join(actor.Validate(), orderID.Validate(), statusErr); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) Actor() kernel.Actor  { return c.actor }
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c AdvanceOrderStatusCommand) Status() order.Status { return c.status }
