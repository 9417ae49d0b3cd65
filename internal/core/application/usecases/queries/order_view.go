package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is the read model of an order with its line items.
type OrderView struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	VendorID       kernel.UUID
	Items          []OrderItemView
	Total          int64
	Status         order.Status
	PaymentStatus  order.PaymentStatus
	DeliveryStatus order.DeliveryStatus
	Address        AddressView
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderItemView struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  int64
	Quantity   int
	Note       string
}

type AddressView struct {
	Label string
	Line1 string
	Line2 string
	City  string
	Zip   string
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Orders     []OrderView
	Total      int64
	TotalPages int
	Page       int
}

var orderColumns = []string{
	"o.id", "o.customer_id", "o.vendor_id", "o.total",
	"o.status", "o.payment_status", "o.delivery_status",
	"o.address_label", "o.address_line1", "o.address_line2", "o.address_city", "o.address_zip",
	"o.created_at", "o.updated_at",
}

// orderListing builds the filtered count and page statements over "orders o".
type orderListing struct {
	from    string
	where   []sq.Sqlizer
	orderBy string
}

func (l orderListing) fetch(ctx context.Context, db *gorm.DB, page Page) (OrderPage, error) {
	countQuery := sq.Select("COUNT(*)").From(l.from)
	listQuery := sq.Select(orderColumns...).From(l.from).
		OrderBy(l.orderBy).
		Limit(page.limit()).
		Offset(page.offset())
	for _, cond := range l.where {
		countQuery = countQuery.Where(cond)
		listQuery = listQuery.Where(cond)
	}

	query, args, err := countQuery.ToSql()
	if err != nil {
		return OrderPage{}, err
	}

	var total int64
	if err = db.WithContext(ctx).Raw(query, args...).Scan(&total).Error; err != nil {
		return OrderPage{}, err
	}

	orders, err := loadOrders(ctx, db, listQuery)
	if err != nil {
		return OrderPage{}, err
	}

	return OrderPage{
		Orders:     orders,
		Total:      total,
		TotalPages: page.totalPages(total),
		Page:       page.Number(),
	}, nil
}

// loadOrders runs a select over orderColumns and attaches the line items.
func loadOrders(ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) ([]OrderView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		view, rawID, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
		ids = append(ids, rawID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := loadOrderItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[ids[i]]
		if orders[i].Items == nil {
			orders[i].Items = make([]OrderItemView, 0)
		}
	}

	return orders, nil
}

func scanOrder(rows *sql.Rows) (OrderView, uuid.UUID, error) {
	var (
		view                                  OrderView
		id, customerID, vendorID              uuid.UUID
		status, paymentStatus, deliveryStatus string
	)

	err := rows.Scan(
		&id, &customerID, &vendorID, &view.Total,
		&status, &paymentStatus, &deliveryStatus,
		&view.Address.Label, &view.Address.Line1, &view.Address.Line2, &view.Address.City, &view.Address.Zip,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, uuid.UUID{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, uuid.UUID{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, uuid.UUID{}, err
	}
	if view.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
		return OrderView{}, uuid.UUID{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, uuid.UUID{}, err
	}
	if view.PaymentStatus, err = order.ParsePaymentStatus(paymentStatus); err != nil {
		return OrderView{}, uuid.UUID{}, err
	}
	if view.DeliveryStatus, err = order.ParseDeliveryStatus(deliveryStatus); err != nil {
		return OrderView{}, uuid.UUID{}, err
	}

	return view, id, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemView, error) {
	query, args, err := sq.
		Select("order_id", "menu_item_id", "name", "unit_price", "quantity", "note").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]OrderItemView, len(orderIDs))
	for rows.Next() {
		var (
			item              OrderItemView
			orderID, menuItem uuid.UUID
		)
		if err = rows.Scan(&orderID, &menuItem, &item.Name, &item.UnitPrice, &item.Quantity, &item.Note); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItem[:]); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}

	return items, rows.Err()
}
