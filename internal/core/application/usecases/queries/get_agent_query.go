package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetAgentQueryIsNotConstructed = errors.New("GetAgentQuery must be created via NewGetAgentQuery constructor")
	ErrGetAgentForbidden             = errs.NewForbiddenError("customers may not read delivery agent profiles")
)

// GetAgentQuery reads one delivery agent. Admins and vendors may read any
// agent; a delivery agent only its own profile.
type GetAgentQuery struct {
	actor   kernel.Actor
	agentID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetAgentQuery(actor kernel.Actor, agentID kernel.UUID) (GetAgentQuery, error) {
	if err := errors.Join(actor.Validate(), agentID.Validate()); err != nil {
		return GetAgentQuery{}, err
	}
	if actor.Is(kernel.Customer) {
		return GetAgentQuery{}, ErrGetAgentForbidden
	}

	return GetAgentQuery{actor: actor, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAgentQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentQueryIsNotConstructed)
}

func (q GetAgentQuery) Actor() kernel.Actor  { return q.actor }
func (q GetAgentQuery) AgentID() kernel.UUID { return q.agentID }
