package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"
)

// RetryPaymentCommandHandler clones the most recent failed attempt of the order
// into a new initiated attempt with a fresh transaction reference.
type RetryPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewRetryPaymentCommandHandler(uowFactory PaymentUoWFactory) RetryPaymentCommandHandler {
	return RetryPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle fails with payment.ErrNoFailedAttempt when the order has never failed a payment.
func (h RetryPaymentCommandHandler) Handle(ctx context.Context, cmd RetryPaymentCommand) (*payment.Payment, error) {
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

	failed, err := uow.PaymentRepository().GetLatestFailed(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, payment.ErrNoFailedAttempt
	}
	if err != nil {
		return nil, err
	}

	attempt, err := payment.Retry(failed)
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
