package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRetryPaymentCommandIsNotConstructed = errors.New(
	"RetryPaymentCommand must be created via NewRetryPaymentCommand constructor",
)

type RetryPaymentCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRetryPaymentCommand(actor kernel.Actor, orderID kernel.UUID) (RetryPaymentCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return RetryPaymentCommand{}, err
	}

	return RetryPaymentCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RetryPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRetryPaymentCommandIsNotConstructed)
}

func (c RetryPaymentCommand) Actor() kernel.Actor  { return c.actor }
func (c RetryPaymentCommand) OrderID() kernel.UUID { return c.orderID }
