package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListAgentsQueryIsNotConstructed = errors.New("ListAgentsQuery must be created via NewListAgentsQuery constructor")
	ErrListAgentsForbidden             = errs.NewForbiddenError("only admins and vendors may list delivery agents")
)

// ListAgentsQuery pages through delivery agents, newest first.
type ListAgentsQuery struct {
	page  Page
	guard guard.ConstructorGuard
}

func NewListAgentsQuery(actor kernel.Actor, page Page) (ListAgentsQuery, error) {
	if err := errors.Join(actor.Validate(), page.Validate()); err != nil {
		return ListAgentsQuery{}, err
	}
	if !actor.Is(kernel.Admin) && !actor.Is(kernel.Vendor) {
		return ListAgentsQuery{}, ErrListAgentsForbidden
	}

	return ListAgentsQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListAgentsQueryIsNotConstructed)
}

func (q ListAgentsQuery) Page() Page { return q.page }
