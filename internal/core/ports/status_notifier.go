package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// StatusNotifier delivers order status change events to the UI collaborator.
// Implementations must tolerate redelivery: an event is marked published only
// after Notify returns nil, so a crash between delivery and marking results
// in a duplicate, not a loss.
type StatusNotifier interface {
	Notify(ctx context.Context, event order.StatusChangedEvent) error
}
