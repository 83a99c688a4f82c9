package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists status changes for an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Delete removes a delivery. Only pre-dispatch deliveries may be
	// deleted; the caller checks EnsureDeletable first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery aggregate under a row lock held
	// until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the order's delivery, or ObjectNotFoundError
	// when none exists. Duplicate-delivery checks use this lookup.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
