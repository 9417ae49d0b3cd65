package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order status changes to other services once
// the transaction that produced them has committed.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, events []order.ChangedEvent) error
}
