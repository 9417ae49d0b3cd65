package ports

import (
	"context"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents and
// their assignment sets.
type AgentRepository interface {
	Add(ctx context.Context, a *agent.DeliveryAgent) error

	// Update stores the agent profile, location and replaces the stored
	// assignment set with the aggregate's current one.
	Update(ctx context.Context, a *agent.DeliveryAgent) error

	Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByAssignedOrder returns the agent whose assignment set holds orderID,
	// or errs.ErrObjectNotFound when no agent holds it.
	GetByAssignedOrder(ctx context.Context, orderID kernel.UUID) (*agent.DeliveryAgent, error)
}
