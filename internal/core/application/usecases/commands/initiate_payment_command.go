package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand opens a payment attempt for the full order total.
type InitiatePaymentCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID
	gateway payment.Gateway
	method  payment.Method
	amount  kernel.Money

	guard guard.ConstructorGuard
}

func NewInitiatePaymentCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	gateway payment.Gateway,
	method payment.Method,
	amount kernel.Money,
) (InitiatePaymentCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		gateway.Validate(),
		method.Validate(),
		amount.Validate(),
	); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return InitiatePaymentCommand{
		actor:   actor,
		orderID: orderID,
		gateway: gateway,
		method:  method,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

func (c InitiatePaymentCommand) Actor() kernel.Actor      { return c.actor }
func (c InitiatePaymentCommand) OrderID() kernel.UUID     { return c.orderID }
func (c InitiatePaymentCommand) Gateway() payment.Gateway { return c.gateway }
func (c InitiatePaymentCommand) Method() payment.Method   { return c.method }
func (c InitiatePaymentCommand) Amount() kernel.Money     { return c.amount }
