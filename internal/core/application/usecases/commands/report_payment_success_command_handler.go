package commands

import (
	"context"
)

// ReportPaymentSuccessCommandHandler marks the attempt successful and completes
// the order payment axis. A second report for the same reference fails with
// payment.ErrAlreadyProcessed. A success for an order already paid through
// another attempt fails with order.ErrAlreadyPaid.
type ReportPaymentSuccessCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewReportPaymentSuccessCommandHandler(uowFactory PaymentUoWFactory) ReportPaymentSuccessCommandHandler {
	return ReportPaymentSuccessCommandHandler{uowFactory: uowFactory}
}

func (h ReportPaymentSuccessCommandHandler) Handle(ctx context.Context, cmd ReportPaymentSuccessCommand) error {
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

	attempt, err := uow.PaymentRepository().GetByTransactionRef(ctx, cmd.TransactionRef())
	if err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, attempt.OrderID())
	if err != nil {
		return err
	}

	if err = attempt.MarkSucceeded(); err != nil {
		return err
	}

	if err = o.MarkPaid(); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, attempt); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
