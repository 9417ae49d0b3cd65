package queries

import (
	"context"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetAgentQueryHandler struct {
	db *gorm.DB
}

func NewGetAgentQueryHandler(db *gorm.DB) GetAgentQueryHandler {
	return GetAgentQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown agents and
// agent.ErrNotSelf when a delivery agent reads another agent.
func (h GetAgentQueryHandler) Handle(ctx context.Context, query GetAgentQuery) (AgentView, error) {
	if err := query.Validate(); err != nil {
		return AgentView{}, err
	}

	agents, err := loadAgents(ctx, h.db, sq.Select(agentColumns...).
		From("delivery_agents").
		Where(sq.Eq{"id": query.AgentID().Bytes()}))
	if err != nil {
		return AgentView{}, err
	}
	if len(agents) == 0 {
		return AgentView{}, errs.NewObjectNotFoundError("deliveryAgent", query.AgentID().String())
	}

	if actor := query.Actor(); actor.Is(kernel.DeliveryAgent) && !actor.IsSelf(agents[0].UserID) {
		return AgentView{}, agent.ErrNotSelf
	}

	return agents[0], nil
}
