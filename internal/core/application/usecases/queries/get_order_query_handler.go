package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown orders and
// order.ErrNotOrderCustomer when a customer reads someone else's order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, err := loadOrders(ctx, h.db, sq.Select(orderColumns...).
		From("orders o").
		Where(sq.Eq{"o.id": query.OrderID().Bytes()}))
	if err != nil {
		return OrderView{}, err
	}

	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if err = authorizeOrderRead(query.Actor(), orders[0].CustomerID); err != nil {
		return OrderView{}, err
	}

	return orders[0], nil
}

func authorizeOrderRead(actor kernel.Actor, customerID kernel.UUID) error {
	if actor.Is(kernel.Customer) && !actor.IsSelf(customerID) {
		return order.ErrNotOrderCustomer
	}
	return nil
}
