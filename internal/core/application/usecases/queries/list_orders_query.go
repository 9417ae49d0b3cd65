package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")
	ErrListOrdersForbidden             = errs.NewForbiddenError("delivery agents cannot list orders")
)

// OrdersFilter narrows an order listing. Nil fields do not filter.
type OrdersFilter struct {
	CustomerID *kernel.UUID
	VendorID   *kernel.UUID
	Status     *order.Status
}

// ListOrdersQuery lists orders newest first. The actor scopes the listing:
// customers see their own orders, vendors the orders of vendors they own,
// admins everything.
type ListOrdersQuery struct {
	actor  kernel.Actor
	filter OrdersFilter
	page   Page
	guard  guard.ConstructorGuard
}

func NewListOrdersQuery(actor kernel.Actor, filter OrdersFilter, page Page) (ListOrdersQuery, error) {
	var statusErr error
	if filter.Status != nil {
		statusErr = filter.Status.Validate()
	}

	if err := errors.Join(actor.Validate(), page.Validate(), statusErr); err != nil {
		return ListOrdersQuery{}, err
	}

	if actor.Is(kernel.DeliveryAgent) {
		return ListOrdersQuery{}, ErrListOrdersForbidden
	}

	return ListOrdersQuery{
		actor:  actor,
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor  { return q.actor }
func (q ListOrdersQuery) Filter() OrdersFilter { return q.filter }
func (q ListOrdersQuery) Page() Page           { return q.page }
