package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/guard"
)

var ErrReportPaymentFailureCommandIsNotConstructed = errors.New(
	"ReportPaymentFailureCommand must be created via NewReportPaymentFailureCommand constructor",
)

// ReportPaymentFailureCommand is a gateway callback rejecting an attempt.
type ReportPaymentFailureCommand struct {
	transactionRef payment.TransactionRef
	reason         string

	guard guard.ConstructorGuard
}

func NewReportPaymentFailureCommand(ref payment.TransactionRef, reason string) (ReportPaymentFailureCommand, error) {
	if err := ref.Validate(); err != nil {
		return ReportPaymentFailureCommand{}, err
	}

	return ReportPaymentFailureCommand{
		transactionRef: ref,
		reason:         strings.TrimSpace(reason),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ReportPaymentFailureCommand) Validate() error {
	return c.guard.Validate(ErrReportPaymentFailureCommandIsNotConstructed)
}

func (c ReportPaymentFailureCommand) TransactionRef() payment.TransactionRef {
	return c.transactionRef
}

func (c ReportPaymentFailureCommand) Reason() string {
	return c.reason
}
