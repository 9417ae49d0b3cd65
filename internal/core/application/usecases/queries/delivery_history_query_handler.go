package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryHistoryQueryHandler lists delivered orders that are still in the
// agent's assignment set, most recently updated first. Delivery removes an
// order from the set, so a delivered order only shows up here while the
// assignment row outlives the delivery.
type DeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

func NewDeliveryHistoryQueryHandler(db *gorm.DB) DeliveryHistoryQueryHandler {
	return DeliveryHistoryQueryHandler{db: db}
}

func (h DeliveryHistoryQueryHandler) Handle(ctx context.Context, query DeliveryHistoryQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	var userID uuid.UUID
	err := h.db.WithContext(ctx).
		Table("delivery_agents").
		Select("user_id").
		Where("id = ?", query.AgentID().Bytes()).
		Row().
		Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderPage{}, errs.NewObjectNotFoundError("deliveryAgent", query.AgentID().String())
		}
		return OrderPage{}, err
	}

	owner, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderPage{}, err
	}

	if actor := query.Actor(); !actor.Is(kernel.Admin) && !(actor.Is(kernel.DeliveryAgent) && actor.IsSelf(owner)) {
		return OrderPage{}, agent.ErrNotSelf
	}

	return orderListing{
		from: "orders o JOIN agent_assignments aa ON aa.order_id = o.id",
		where: []sq.Sqlizer{
			sq.Eq{"aa.agent_id": query.AgentID().Bytes()},
			sq.Eq{"o.delivery_status": order.DeliveryDelivered.String()},
		},
		orderBy: "o.updated_at DESC",
	}.fetch(ctx, h.db, query.Page())
}
