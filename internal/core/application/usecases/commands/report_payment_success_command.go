package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/guard"
)

var ErrReportPaymentSuccessCommandIsNotConstructed = errors.New(
	"ReportPaymentSuccessCommand must be created via NewReportPaymentSuccessCommand constructor",
)

// ReportPaymentSuccessCommand is a gateway callback confirming an attempt.
type ReportPaymentSuccessCommand struct {
	transactionRef payment.TransactionRef

	guard guard.ConstructorGuard
}

func NewReportPaymentSuccessCommand(ref payment.TransactionRef) (ReportPaymentSuccessCommand, error) {
	if err := ref.Validate(); err != nil {
		return ReportPaymentSuccessCommand{}, err
	}

	return ReportPaymentSuccessCommand{
		transactionRef: ref,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ReportPaymentSuccessCommand) Validate() error {
	return c.guard.Validate(ErrReportPaymentSuccessCommandIsNotConstructed)
}

func (c ReportPaymentSuccessCommand) TransactionRef() payment.TransactionRef {
	return c.transactionRef
}
