package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/guard"
)

var ErrListOrderPaymentsQueryIsNotConstructed = errors.New(
	"ListOrderPaymentsQuery must be created via NewListOrderPaymentsQuery constructor",
)

// ListOrderPaymentsQuery returns every payment attempt of an order, newest first.
type ListOrderPaymentsQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewListOrderPaymentsQuery(actor kernel.Actor, orderID kernel.UUID) (ListOrderPaymentsQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return ListOrderPaymentsQuery{}, err
	}

	return ListOrderPaymentsQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderPaymentsQueryIsNotConstructed)
}

func (q ListOrderPaymentsQuery) Actor() kernel.Actor  { return q.actor }
func (q ListOrderPaymentsQuery) OrderID() kernel.UUID { return q.orderID }

type PaymentView struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Gateway        payment.Gateway
	Method         payment.Method
	TransactionRef string
	Amount         int64
	Status         payment.Status
	FailureReason  string
	RefundReason   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
