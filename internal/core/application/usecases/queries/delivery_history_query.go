package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrDeliveryHistoryQueryIsNotConstructed = errors.New(
		"DeliveryHistoryQuery must be created via NewDeliveryHistoryQuery constructor",
	)
	ErrDeliveryHistoryForbidden = errs.NewForbiddenError("only admins and the agent may read delivery history")
)

// DeliveryHistoryQuery pages through the delivered orders of an agent.
type DeliveryHistoryQuery struct {
	actor   kernel.Actor
	agentID kernel.UUID
	page    Page
	guard   guard.ConstructorGuard
}

func NewDeliveryHistoryQuery(actor kernel.Actor, agentID kernel.UUID, page Page) (DeliveryHistoryQuery, error) {
	if err := errors.Join(actor.Validate(), agentID.Validate(), page.Validate()); err != nil {
		return DeliveryHistoryQuery{}, err
	}

	if !actor.Is(kernel.Admin) && !actor.Is(kernel.DeliveryAgent) {
		return DeliveryHistoryQuery{}, ErrDeliveryHistoryForbidden
	}

	return DeliveryHistoryQuery{
		actor:   actor,
		agentID: agentID,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q DeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryHistoryQueryIsNotConstructed)
}

func (q DeliveryHistoryQuery) Actor() kernel.Actor  { return q.actor }
func (q DeliveryHistoryQuery) AgentID() kernel.UUID { return q.agentID }
func (q DeliveryHistoryQuery) Page() Page           { return q.page }
