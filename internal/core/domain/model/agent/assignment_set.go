package agent

import (
	"foodorder/internal/core/domain/model/kernel"
)

// AssignmentSet is an insertion-ordered set of order references.
type AssignmentSet struct {
	orderIDs []kernel.UUID
}

// NewAssignmentSet builds a set from stored references, dropping duplicates.
func NewAssignmentSet(orderIDs ...kernel.UUID) (AssignmentSet, error) {
	s := AssignmentSet{orderIDs: make([]kernel.UUID, 0, len(orderIDs))}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return AssignmentSet{}, err
		}
		s.Add(id)
	}
	return s, nil
}

// Add inserts orderID unless present and reports whether the set changed.
func (s *AssignmentSet) Add(orderID kernel.UUID) bool {
	if s.Contains(orderID) {
		return false
	}
	s.orderIDs = append(s.orderIDs, orderID)
	return true
}

// Remove deletes orderID and reports whether it was present.
func (s *AssignmentSet) Remove(orderID kernel.UUID) bool {
	for i, id := range s.orderIDs {
		if id.IsEqual(orderID) {
			s.orderIDs = append(s.orderIDs[:i], s.orderIDs[i+1:]...)
			return true
		}
	}
	return false
}

func (s AssignmentSet) Contains(orderID kernel.UUID) bool {
	for _, id := range s.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

func (s AssignmentSet) Len() int {
	return len(s.orderIDs)
}

func (s AssignmentSet) IsEmpty() bool {
	return len(s.orderIDs) == 0
}

// OrderIDs returns a copy in insertion order.
func (s AssignmentSet) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(s.orderIDs))
	copy(out, s.orderIDs)
	return out
}
