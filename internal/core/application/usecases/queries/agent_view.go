package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentView is a delivery agent with the ids of its active orders.
type AgentView struct {
	ID             kernel.UUID
	UserID         kernel.UUID
	Name           string
	Contact        string
	Location       *LocationView
	ActiveOrderIDs []kernel.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AgentPage struct {
	Agents     []AgentView
	Total      int64
	TotalPages int
	Page       int
}

var agentColumns = []string{
	"id", "user_id", "name", "contact", "location_lon", "location_lat", "created_at", "updated_at",
}

// loadAgents runs a select over agentColumns and attaches assignment sets.
func loadAgents(ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) ([]AgentView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]AgentView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			view       AgentView
			id, userID uuid.UUID
			lon, lat   sql.NullFloat64
		)

		err = rows.Scan(&id, &userID, &view.Name, &view.Contact, &lon, &lat, &view.CreatedAt, &view.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		view.Location = locationOf(lon, lat)

		agents = append(agents, view)
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		return agents, nil
	}

	assignments, err := loadAssignments(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	for i := range agents {
		agents[i].ActiveOrderIDs = assignments[ids[i]]
		if agents[i].ActiveOrderIDs == nil {
			agents[i].ActiveOrderIDs = make([]kernel.UUID, 0)
		}
	}

	return agents, nil
}

func loadAssignments(ctx context.Context, db *gorm.DB, agentIDs []uuid.UUID) (map[uuid.UUID][]kernel.UUID, error) {
	query, args, err := sq.Select("agent_id", "order_id").
		From("agent_assignments").
		Where(sq.Eq{"agent_id": agentIDs}).
		OrderBy("agent_id", "position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make(map[uuid.UUID][]kernel.UUID, len(agentIDs))
	for rows.Next() {
		var agentID, orderID uuid.UUID
		if err = rows.Scan(&agentID, &orderID); err != nil {
			return nil, err
		}
		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		assignments[agentID] = append(assignments[agentID], id)
	}

	return assignments, rows.Err()
}
