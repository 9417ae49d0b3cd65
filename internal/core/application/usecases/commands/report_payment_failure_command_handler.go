package commands

import (
	"context"
)

// ReportPaymentFailureCommandHandler marks the attempt failed and resets the
// order payment axis to pending. Repeating the report yields the same state.
type ReportPaymentFailureCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewReportPaymentFailureCommandHandler(uowFactory PaymentUoWFactory) ReportPaymentFailureCommandHandler {
	return ReportPaymentFailureCommandHandler{uowFactory: uowFactory}
}

func (h ReportPaymentFailureCommandHandler) Handle(ctx context.Context, cmd ReportPaymentFailureCommand) error {
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

	attempt.MarkFailed(cmd.Reason())
	o.ResetPayment()

	if err = uow.PaymentRepository().Update(ctx, attempt); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
