package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListAgentsQueryHandler struct {
	db *gorm.DB
}

func NewListAgentsQueryHandler(db *gorm.DB) ListAgentsQueryHandler {
	return ListAgentsQueryHandler{db: db}
}

func (h ListAgentsQueryHandler) Handle(ctx context.Context, query ListAgentsQuery) (AgentPage, error) {
	if err := query.Validate(); err != nil {
		return AgentPage{}, err
	}

	total, err := countRows(ctx, h.db, sq.Select("COUNT(*)").From("delivery_agents"))
	if err != nil {
		return AgentPage{}, err
	}

	page := query.Page()
	agents, err := loadAgents(ctx, h.db, sq.Select(agentColumns...).
		From("delivery_agents").
		OrderBy("created_at DESC", "id").
		Limit(page.limit()).
		Offset(page.offset()))
	if err != nil {
		return AgentPage{}, err
	}

	return AgentPage{
		Agents:     agents,
		Total:      total,
		TotalPages: page.totalPages(total),
		Page:       page.Number(),
	}, nil
}
