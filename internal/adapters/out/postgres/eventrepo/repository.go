package eventrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pglock"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append persists status change events.
func (r *GormEventRepository) Append(ctx context.Context, events ...order.StatusChangedEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, fromDomain(event))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return pglock.Translate(err)
	}
	return nil
}

// GetUnpublished retrieves up to limit undelivered events, oldest first.
// Recording time ties break on ID so the feed order is stable across calls.
func (r *GormEventRepository) GetUnpublished(ctx context.Context, limit int) ([]order.StatusChangedEvent, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published = ?", false).
		Order("recorded_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pglock.Translate(err)
	}

	events := make([]order.StatusChangedEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkPublished flags the given events as delivered.
func (r *GormEventRepository) MarkPublished(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id IN ?", rawIDs).
		Update("published", true).Error
	if err != nil {
		return pglock.Translate(err)
	}
	return nil
}
