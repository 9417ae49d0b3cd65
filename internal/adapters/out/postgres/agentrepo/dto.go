package agentrepo

import (
	"time"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryAgentDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Contact     string          `gorm:"type:varchar(255);not null"`
	Location    LocationDTO     `gorm:"embedded;embeddedPrefix:location_"`
	Assignments []AssignmentDTO `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (DeliveryAgentDTO) TableName() string {
	return "delivery_agents"
}

type LocationDTO struct {
	Lon *float64
	Lat *float64
}

// AssignmentDTO is one active order of an agent. OrderID is unique across
// the table, so no order can be held by two agents.
type AssignmentDTO struct {
	AgentID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex"`
	Position int       `gorm:"not null"`
}

func (AssignmentDTO) TableName() string {
	return "agent_assignments"
}

func fromDomain(a *agent.DeliveryAgent) DeliveryAgentDTO {
	agentID := a.ID().Bytes()

	orderIDs := a.Assignments().OrderIDs()
	assignments := make([]AssignmentDTO, 0, len(orderIDs))
	for i, orderID := range orderIDs {
		assignments = append(assignments, AssignmentDTO{
			AgentID:  agentID,
			OrderID:  orderID.Bytes(),
			Position: i,
		})
	}

	return DeliveryAgentDTO{
		ID:          agentID,
		UserID:      a.UserID().Bytes(),
		Name:        a.Name(),
		Contact:     a.Contact(),
		Location:    locationFromDomain(a.Location()),
		Assignments: assignments,
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func toDomain(dto DeliveryAgentDTO) (*agent.DeliveryAgent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	location, err := locationToDomain(dto.Location)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.Assignments))
	for _, assignment := range dto.Assignments {
		orderID, idErr := kernel.UUIDFromBytes(assignment.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	assignments, err := agent.NewAssignmentSet(orderIDs...)
	if err != nil {
		return nil, err
	}

	return agent.RestoreDeliveryAgent(
		id, userID, dto.Name, dto.Contact, location, assignments, dto.CreatedAt, dto.UpdatedAt,
	)
}

func locationFromDomain(p *kernel.Point) LocationDTO {
	if p == nil {
		return LocationDTO{}
	}
	lon, lat := p.Lon(), p.Lat()
	return LocationDTO{Lon: &lon, Lat: &lat}
}

func locationToDomain(dto LocationDTO) (*kernel.Point, error) {
	if dto.Lon == nil || dto.Lat == nil {
		return nil, nil
	}
	p, err := kernel.NewPoint(*dto.Lon, *dto.Lat)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
