package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

type RefundPaymentCommand struct {
	actor          kernel.Actor
	transactionRef payment.TransactionRef
	reason         string

	guard guard.ConstructorGuard
}

func NewRefundPaymentCommand(
	actor kernel.Actor,
	ref payment.TransactionRef,
	reason string,
) (RefundPaymentCommand, error) {
	if err := errors.Join(actor.Validate(), ref.Validate()); err != nil {
		return RefundPaymentCommand{}, err
	}

	return RefundPaymentCommand{
		actor:          actor,
		transactionRef: ref,
		reason:         strings.TrimSpace(reason),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

func (c RefundPaymentCommand) Actor() kernel.Actor                    { return c.actor }
func (c RefundPaymentCommand) TransactionRef() payment.TransactionRef { return c.transactionRef }
func (c RefundPaymentCommand) Reason() string                         { return c.reason }
