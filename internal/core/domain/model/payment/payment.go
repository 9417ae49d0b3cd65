package payment

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via Initiate, Retry or RestorePayment")

	ErrAmountMismatch = errs.NewValueIsInvalidErrorWithCause(
		"amount", errors.New("amount does not match the order total"))
	ErrAlreadyProcessed = errs.NewStateIsInvalidError("payment attempt already succeeded")
	ErrNotRefundable    = errs.NewStateIsInvalidError("only a successful payment attempt can be refunded")
	ErrNotFailed        = errs.NewStateIsInvalidError("only a failed payment attempt can be retried")

	// ErrNoFailedAttempt is its own error kind: a retry was requested but the
	// order has no failed attempt to clone.
	ErrNoFailedAttempt = errors.New("no failed payment attempt to retry")
)

// Payment is one attempt to pay for an order.
type Payment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	gateway        Gateway
	method         Method
	transactionRef TransactionRef
	amount         kernel.Money
	status         Status
	failureReason  string
	refundReason   string
	createdAt      time.Time
	updatedAt      time.Time
	guard          guard.ConstructorGuard
}

// Initiate opens an attempt for orderID. amount must equal the order total;
// the caller is responsible for the order-level checks (ownership, already paid).
func Initiate(
	orderID kernel.UUID,
	orderTotal kernel.Money,
	gateway Gateway,
	method Method,
	amount kernel.Money,
) (*Payment, error) {
	if err := errors.Join(
		orderID.Validate(),
		gateway.Validate(),
		method.Validate(),
		amount.Validate(),
		orderTotal.Validate(),
	); err != nil {
		return nil, err
	}

	if !amount.IsEqual(orderTotal) {
		return nil, ErrAmountMismatch
	}

	now := time.Now().UTC()
	return &Payment{
		id:             kernel.NewUUID(),
		orderID:        orderID,
		gateway:        gateway,
		method:         method,
		transactionRef: NewTransactionRef(gateway, now),
		amount:         amount,
		status:         Initiated,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Retry opens a new attempt that clones gateway, amount and method of a failed one.
func Retry(failed *Payment) (*Payment, error) {
	if err := failed.Validate(); err != nil {
		return nil, err
	}
	if failed.status != Failed {
		return nil, ErrNotFailed
	}

	now := time.Now().UTC()
	return &Payment{
		id:             kernel.NewUUID(),
		orderID:        failed.orderID,
		gateway:        failed.gateway,
		method:         failed.method,
		transactionRef: NewTransactionRef(failed.gateway, now),
		amount:         failed.amount,
		status:         Initiated,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func RestorePayment(
	id, orderID kernel.UUID,
	gateway Gateway,
	method Method,
	transactionRef TransactionRef,
	amount kernel.Money,
	status Status,
	failureReason, refundReason string,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		gateway.Validate(),
		method.Validate(),
		transactionRef.Validate(),
		amount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:             id,
		orderID:        orderID,
		gateway:        gateway,
		method:         method,
		transactionRef: transactionRef,
		amount:         amount,
		status:         status,
		failureReason:  failureReason,
		refundReason:   refundReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID                { return p.id }
func (p *Payment) OrderID() kernel.UUID           { return p.orderID }
func (p *Payment) Gateway() Gateway               { return p.gateway }
func (p *Payment) Method() Method                 { return p.method }
func (p *Payment) TransactionRef() TransactionRef { return p.transactionRef }
func (p *Payment) Amount() kernel.Money           { return p.amount }
func (p *Payment) Status() Status                 { return p.status }
func (p *Payment) FailureReason() string          { return p.failureReason }
func (p *Payment) RefundReason() string           { return p.refundReason }
func (p *Payment) CreatedAt() time.Time           { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time           { return p.updatedAt }

// MarkSucceeded applies a gateway success report. A second report for the
// same attempt is rejected rather than silently accepted.
func (p *Payment) MarkSucceeded() error {
	if p.status == Success {
		return ErrAlreadyProcessed
	}

	p.status = Success
	p.touch()
	return nil
}

// MarkFailed applies a gateway failure report. Repeated reports are idempotent.
func (p *Payment) MarkFailed(reason string) {
	p.status = Failed
	p.failureReason = strings.TrimSpace(reason)
	p.touch()
}

func (p *Payment) Refund(reason string) error {
	if p.status != Success {
		return ErrNotRefundable
	}

	p.status = Refunded
	p.refundReason = strings.TrimSpace(reason)
	p.touch()
	return nil
}

func (p *Payment) touch() {
	p.updatedAt = time.Now().UTC()
}
