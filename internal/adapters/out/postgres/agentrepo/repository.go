package agentrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the agent row and replaces its assignment set wholesale.
// Callers run it inside a unit of work so both writes land together.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DeliveryAgentDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":         dto.Name,
		"contact":      dto.Contact,
		"location_lon": dto.Location.Lon,
		"location_lat": dto.Location.Lat,
		"updated_at":   dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryAgent", aggregate.ID().String())
	}

	if err := db.Where("agent_id = ?", dto.ID).Delete(&AssignmentDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Assignments) > 0 {
		if err := db.Create(&dto.Assignments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryAgentDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryAgent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAssignedOrder finds the agent whose active set holds orderID.
func (r *GormAgentRepository) GetByAssignedOrder(ctx context.Context, orderID kernel.UUID) (*agent.DeliveryAgent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryAgentDTO
	err := r.preloaded(ctx).
		Where("id IN (?)", r.db.Model(&AssignmentDTO{}).Select("agent_id").Where("order_id = ?", orderID.Bytes())).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryAgent", "holding order "+orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAgentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&DeliveryAgentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryAgent", id.String())
	}

	return nil
}

func (r *GormAgentRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}
