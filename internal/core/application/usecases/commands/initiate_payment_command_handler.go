package commands

import (
	"context"

	"foodorder/internal/core/domain/model/payment"
)

// InitiatePaymentCommandHandler creates an initiated attempt with a fresh
// transaction reference. The order itself is not modified.
//
// Errors:
//   - order.ErrNotOrderCustomer when the actor did not place the order
//   - order.ErrAlreadyPaid when the payment axis is completed
//   - payment.ErrAmountMismatch when amount differs from the order total
type InitiatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewInitiatePaymentCommandHandler(uowFactory PaymentUoWFactory) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{uowFactory: uowFactory}
}

func (h InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.AuthorizeCustomer(cmd.Actor()); err != nil {
		return nil, err
	}

	if err = o.ValidatePayable(); err != nil {
		return nil, err
	}

	attempt, err := payment.Initiate(o.ID(), o.Total(), cmd.Gateway(), cmd.Method(), cmd.Amount())
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, attempt); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return attempt, nil
}
