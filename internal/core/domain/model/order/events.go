package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// ChangedEvent is recorded whenever one of the three status axes changes.
// The unit of work publishes pending events after a successful commit.
type ChangedEvent struct {
	EventID        kernel.UUID
	OrderID        kernel.UUID
	CustomerID     kernel.UUID
	VendorID       kernel.UUID
	Reason         string
	Status         Status
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	OccurredAt     time.Time
}

// Reasons carried by ChangedEvent.
const (
	ReasonPlaced           = "placed"
	ReasonStatusAdvanced   = "status_advanced"
	ReasonCancelled        = "cancelled"
	ReasonPaymentCompleted = "payment_completed"
	ReasonPaymentReset     = "payment_reset"
	ReasonPaymentRefunded  = "payment_refunded"
	ReasonDeliveryStarted  = "delivery_started"
	ReasonDeliveryUpdated  = "delivery_updated"
)
