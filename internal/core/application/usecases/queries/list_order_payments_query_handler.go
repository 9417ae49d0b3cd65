package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListOrderPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListOrderPaymentsQueryHandler(db *gorm.DB) ListOrderPaymentsQueryHandler {
	return ListOrderPaymentsQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown orders and
// order.ErrNotOrderCustomer when a customer lists someone else's payments.
func (h ListOrderPaymentsQueryHandler) Handle(ctx context.Context, query ListOrderPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rawCustomerID uuid.UUID
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("customer_id").
		Where("id = ?", query.OrderID().Bytes()).
		Row().
		Scan(&rawCustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(rawCustomerID[:])
	if err != nil {
		return nil, err
	}

	if err = authorizeOrderRead(query.Actor(), customerID); err != nil {
		return nil, err
	}

	listSQL, args, err := sq.
		Select("id", "order_id", "gateway", "method", "transaction_ref", "amount",
			"status", "failure_reason", "refund_reason", "created_at", "updated_at").
		From("payments").
		Where(sq.Eq{"order_id": query.OrderID().Bytes()}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(listSQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		view, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		payments = append(payments, view)
	}

	return payments, rows.Err()
}

func scanPayment(rows *sql.Rows) (PaymentView, error) {
	var (
		view                    PaymentView
		id, orderID             uuid.UUID
		gateway, method, status string
	)

	err := rows.Scan(&id, &orderID, &gateway, &method, &view.TransactionRef, &view.Amount,
		&status, &view.FailureReason, &view.RefundReason, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return PaymentView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return PaymentView{}, err
	}
	if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return PaymentView{}, err
	}
	if view.Gateway, err = payment.ParseGateway(gateway); err != nil {
		return PaymentView{}, err
	}
	if view.Method, err = payment.ParseMethod(method); err != nil {
		return PaymentView{}, err
	}
	if view.Status, err = payment.ParseStatus(status); err != nil {
		return PaymentView{}, err
	}

	return view, nil
}
