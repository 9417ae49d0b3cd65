package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	filter := query.Filter()
	actor := query.Actor()

	var where []sq.Sqlizer
	switch {
	case actor.Is(kernel.Customer):
		where = append(where, sq.Eq{"o.customer_id": actor.ID().Bytes()})
	case actor.Is(kernel.Vendor):
		where = append(where, sq.Expr("o.vendor_id IN (SELECT id FROM vendors WHERE owner_id = ?)", actor.ID().Bytes()))
	}

	if filter.CustomerID != nil {
		where = append(where, sq.Eq{"o.customer_id": filter.CustomerID.Bytes()})
	}
	if filter.VendorID != nil {
		where = append(where, sq.Eq{"o.vendor_id": filter.VendorID.Bytes()})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"o.status": filter.Status.String()})
	}

	return orderListing{
		from:    "orders o",
		where:   where,
		orderBy: "o.created_at DESC",
	}.fetch(ctx, h.db, query.Page())
}
