package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)
	ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
		"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
	)
)

// AssignDeliveryCommand puts an order into an agent's assignment set on behalf
// of an admin or the order's vendor.
type AssignDeliveryCommand struct {
	actor   kernel.Actor
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(actor kernel.Actor, agentID, orderID kernel.UUID) (AssignDeliveryCommand, error) {
	if err := errors.Join(actor.Validate(), agentID.Validate(), orderID.Validate()); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return AssignDeliveryCommand{
		actor:   actor,
		agentID: agentID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) Actor() kernel.Actor  { return c.actor }
func (c AssignDeliveryCommand) AgentID() kernel.UUID { return c.agentID }
func (c AssignDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// AcceptDeliveryCommand is the agent picking up an order.
type AcceptDeliveryCommand struct {
	actor   kernel.Actor
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptDeliveryCommand(actor kernel.Actor, agentID, orderID kernel.UUID) (AcceptDeliveryCommand, error) {
	if err := errors.Join(actor.Validate(), agentID.Validate(), orderID.Validate()); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return AcceptDeliveryCommand{
		actor:   actor,
		agentID: agentID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) Actor() kernel.Actor  { return c.actor }
func (c AcceptDeliveryCommand) AgentID() kernel.UUID { return c.agentID }
func (c AcceptDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
