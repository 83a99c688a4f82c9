package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// EventRepository defines the persistence contract for the append-only
// order status change feed. Events are written in the same transaction as
// the status change itself and drained asynchronously by the notification
// job.
type EventRepository interface {
	// Append persists status change events.
	Append(ctx context.Context, events ...order.StatusChangedEvent) error

	// GetUnpublished retrieves up to limit events not yet delivered,
	// oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]order.StatusChangedEvent, error)

	// MarkPublished flags the given events as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID) error
}
