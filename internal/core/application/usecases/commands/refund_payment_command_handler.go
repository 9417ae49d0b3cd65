package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrRefundForbidden = errs.NewForbiddenError("only admins can refund payments")

// RefundPaymentCommandHandler refunds a successful attempt and moves the order
// payment axis to refunded. Admin only.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{uowFactory: uowFactory}
}

func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(kernel.Admin) {
		return ErrRefundForbidden
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

	if err = attempt.Refund(cmd.Reason()); err != nil {
		return err
	}
	o.MarkRefunded()

	if err = uow.PaymentRepository().Update(ctx, attempt); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
