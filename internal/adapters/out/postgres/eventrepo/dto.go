// Package eventrepo persists the append-only order status change feed.
// Rows are written in the transaction that changed the order and flipped to
// published once the notification job has delivered them.
package eventrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventDTO represents one recorded order status change.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus int
	ToStatus   int
	Source     string
	RecordedAt time.Time `gorm:"index"`
	Published  bool      `gorm:"index"`
}

// TableName specifies the database table name for status change events.
func (EventDTO) TableName() string {
	return "order_status_events"
}

// fromDomain converts a status change event to its database representation.
func fromDomain(event order.StatusChangedEvent) EventDTO {
	return EventDTO{
		ID:         event.ID.Bytes(),
		OrderID:    event.OrderID.Bytes(),
		FromStatus: int(event.From),
		ToStatus:   int(event.To),
		Source:     string(event.Source),
		RecordedAt: event.RecordedAt,
	}
}

// toDomain converts a database DTO back to a status change event.
func toDomain(dto EventDTO) (order.StatusChangedEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChangedEvent{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChangedEvent{}, err
	}

	return order.StatusChangedEvent{
		ID:         id,
		OrderID:    orderID,
		From:       order.Status(dto.FromStatus),
		To:         order.Status(dto.ToStatus),
		Source:     order.Source(dto.Source),
		RecordedAt: dto.RecordedAt,
	}, nil
}
