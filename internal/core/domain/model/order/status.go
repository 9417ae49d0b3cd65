package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// An order moves along three loosely coupled axes. Each axis is its own
// enumeration and only the cross-setting rules on Order link them:
//
//	status:         ordered → preparing → out_for_delivery → delivered
//	                any but delivered → cancelled
//	paymentStatus:  pending ⇄ completed → refunded
//	deliveryStatus: pending → out_for_delivery → delivered
//
// Not every combination is reachable, but none is rejected either.

// Status is the overall progress of an order.
type Status int

const (
	// UnknownStatus (0) catches uninitialized values.
	UnknownStatus Status = iota
	Ordered
	Preparing
	OutForDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Ordered:        "ordered",
	Preparing:      "preparing",
	OutForDelivery: "out_for_delivery",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
}

// ParseStatus converts the stored or transported name of a status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsAdvanceTarget reports whether s may be set through AdvanceStatus.
func (s Status) IsAdvanceTarget() bool {
	return s == Preparing || s == OutForDelivery || s == Delivered
}

// PaymentStatus tracks whether the order has been paid for.
type PaymentStatus int

const (
	UnknownPaymentStatus PaymentStatus = iota
	PaymentPending
	PaymentCompleted
	PaymentRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending:   "pending",
	PaymentCompleted: "completed",
	PaymentRefunded:  "refunded",
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, name := range paymentStatusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// DeliveryStatus tracks the hand-off to a delivery agent.
type DeliveryStatus int

const (
	UnknownDeliveryStatus DeliveryStatus = iota
	DeliveryPending
	DeliveryOutForDelivery
	DeliveryDelivered
)

var deliveryStatusNames = map[DeliveryStatus]string{
	DeliveryPending:        "pending",
	DeliveryOutForDelivery: "out_for_delivery",
	DeliveryDelivered:      "delivered",
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for st, name := range deliveryStatusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus", fmt.Errorf("%q is not a valid delivery status", s))
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// IsAgentTarget reports whether an agent may report s through a delivery status update.
func (s DeliveryStatus) IsAgentTarget() bool {
	return s == DeliveryOutForDelivery || s == DeliveryDelivered
}
