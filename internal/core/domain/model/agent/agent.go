package agent

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAgentIsNotConstructed = errors.New("DeliveryAgent must be created via NewDeliveryAgent or RestoreDeliveryAgent")
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrContactIsRequired     = errs.NewValueIsRequiredError("contact")

	ErrNotSelf              = errs.NewForbiddenError("actor is not this delivery agent")
	ErrOrderNotAssigned     = errs.NewStateIsInvalidError("order is not assigned to this delivery agent")
	ErrHasActiveOrders      = errs.NewStateIsInvalidError("delivery agent has active orders")
	ErrAssignedToOtherAgent = errs.NewStateIsInvalidError("order is assigned to another delivery agent")
)

// DeliveryAgent is the delivery profile of a user with a position and a set of active orders.
type DeliveryAgent struct {
	id          kernel.UUID
	userID      kernel.UUID
	name        string
	contact     string
	location    *kernel.Point
	assignments AssignmentSet
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewDeliveryAgent registers the agent profile of user userID with no active orders.
func NewDeliveryAgent(userID kernel.UUID, name, contact string, location *kernel.Point) (*DeliveryAgent, error) {
	now := time.Now().UTC()
	return RestoreDeliveryAgent(kernel.NewUUID(), userID, name, contact, location, AssignmentSet{}, now, now)
}

func RestoreDeliveryAgent(
	id, userID kernel.UUID,
	name, contact string,
	location *kernel.Point,
	assignments AssignmentSet,
	createdAt, updatedAt time.Time,
) (*DeliveryAgent, error) {
	a := &DeliveryAgent{
		assignments: assignments,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setName(name),
		a.setContact(contact),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *DeliveryAgent) ID() kernel.UUID         { return a.id }
func (a *DeliveryAgent) UserID() kernel.UUID     { return a.userID }
func (a *DeliveryAgent) Name() string            { return a.name }
func (a *DeliveryAgent) Contact() string         { return a.contact }
func (a *DeliveryAgent) Location() *kernel.Point { return a.location }
func (a *DeliveryAgent) Assignments() AssignmentSet {
	return AssignmentSet{orderIDs: a.assignments.OrderIDs()}
}
func (a *DeliveryAgent) CreatedAt() time.Time           { return a.createdAt }
func (a *DeliveryAgent) UpdatedAt() time.Time           { return a.updatedAt }
func (a *DeliveryAgent) IsAssigned(id kernel.UUID) bool { return a.assignments.Contains(id) }

// AuthorizeSelf passes only the delivery agent user behind this profile.
func (a *DeliveryAgent) AuthorizeSelf(actor kernel.Actor) error {
	if !actor.Is(kernel.DeliveryAgent) || !actor.IsSelf(a.userID) {
		return ErrNotSelf
	}
	return nil
}

// Assign adds orderID to the active set. Assigning twice is a no-op.
func (a *DeliveryAgent) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if a.assignments.Add(orderID) {
		a.touch()
	}
	return nil
}

// ValidateAssigned fails with ErrOrderNotAssigned unless orderID is active for the agent.
func (a *DeliveryAgent) ValidateAssigned(orderID kernel.UUID) error {
	if !a.assignments.Contains(orderID) {
		return ErrOrderNotAssigned
	}
	return nil
}

// Complete removes a delivered order from the active set.
func (a *DeliveryAgent) Complete(orderID kernel.UUID) error {
	if !a.assignments.Remove(orderID) {
		return ErrOrderNotAssigned
	}
	a.touch()
	return nil
}

// Relocate records a reported position.
func (a *DeliveryAgent) Relocate(location kernel.Point) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = &location
	a.touch()
	return nil
}

// ValidateRemovable refuses to delete an agent that still carries orders.
func (a *DeliveryAgent) ValidateRemovable() error {
	if !a.assignments.IsEmpty() {
		return ErrHasActiveOrders
	}
	return nil
}

func (a *DeliveryAgent) touch() {
	a.updatedAt = time.Now().UTC()
}

func (a *DeliveryAgent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAgent) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.userID = id
	return nil
}

func (a *DeliveryAgent) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *DeliveryAgent) setContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return ErrContactIsRequired
	}
	a.contact = contact
	return nil
}

func (a *DeliveryAgent) setLocation(location *kernel.Point) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	a.location = location
	return nil
}
