// Package notifier delivers order status change events to the UI
// collaborator. The current transport is structured logging; swapping in a
// message broker only requires another StatusNotifier implementation.
package notifier

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
)

// SlogStatusNotifier publishes status change events as structured log
// records. Delivery is considered successful once the record is written.
type SlogStatusNotifier struct {
	logger *slog.Logger
}

// NewSlogStatusNotifier creates a notifier writing to the given logger.
func NewSlogStatusNotifier(logger *slog.Logger) *SlogStatusNotifier {
	return &SlogStatusNotifier{
		logger: logger.With("component", "status_notifier"),
	}
}

// Notify publishes one status change event.
func (n *SlogStatusNotifier) Notify(ctx context.Context, event order.StatusChangedEvent) error {
	n.logger.InfoContext(ctx, "Order status changed",
		"event_id", event.ID.String(),
		"order_id", event.OrderID.String(),
		"from", event.From.String(),
		"to", event.To.String(),
		"source", string(event.Source),
		"recorded_at", event.RecordedAt,
	)
	return nil
}
