package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment attempts.
type PaymentRepository interface {
	// Add persists a new attempt. The transaction reference is unique.
	Add(ctx context.Context, attempt *payment.Payment) error

	Update(ctx context.Context, attempt *payment.Payment) error

	// GetByTransactionRef returns errs.ErrObjectNotFound for unknown references.
	GetByTransactionRef(ctx context.Context, ref payment.TransactionRef) (*payment.Payment, error)

	// GetLatestFailed returns the most recently created failed attempt of the
	// order, or errs.ErrObjectNotFound when there is none.
	GetLatestFailed(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// DeleteForOrdersCreatedBefore removes attempts of orders created before cutoff.
	DeleteForOrdersCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
