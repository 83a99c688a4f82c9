package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Source names the entity whose transition caused an order status change.
type Source string

const (
	// SourceOrder marks a direct actor-initiated transition.
	SourceOrder Source = "order"

	// SourcePayment marks a change derived from a payment transition.
	SourcePayment Source = "payment"

	// SourceDelivery marks a change derived from a delivery transition.
	SourceDelivery Source = "delivery"
)

// StatusChangedEvent records one order status change. Events are appended in
// the same transaction as the change itself and drained asynchronously to
// notify the UI collaborator, so a consumer replaying the feed sees every
// transition exactly once and in order.
type StatusChangedEvent struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	From       Status
	To         Status
	Source     Source
	RecordedAt time.Time
}

// NewStatusChangedEvent creates an event for one observed transition.
func NewStatusChangedEvent(orderID kernel.UUID, from, to Status, source Source, now time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		From:       from,
		To:         to,
		Source:     source,
		RecordedAt: now,
	}
}
