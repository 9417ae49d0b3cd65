package kafka

import (
	"time"

	"foodorder/internal/core/domain/model/order"
)

// orderChangedMessage is the wire form of order.ChangedEvent.
type orderChangedMessage struct {
	EventID        string    `json:"eventId"`
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId"`
	VendorID       string    `json:"vendorId"`
	Reason         string    `json:"reason"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	DeliveryStatus string    `json:"deliveryStatus"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func messageFromEvent(e order.ChangedEvent) orderChangedMessage {
	return orderChangedMessage{
		EventID:        e.EventID.String(),
		OrderID:        e.OrderID.String(),
		CustomerID:     e.CustomerID.String(),
		VendorID:       e.VendorID.String(),
		Reason:         e.Reason,
		Status:         e.Status.String(),
		PaymentStatus:  e.PaymentStatus.String(),
		DeliveryStatus: e.DeliveryStatus.String(),
		OccurredAt:     e.OccurredAt,
	}
}
