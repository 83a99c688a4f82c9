package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"
)

// DiscountRepository defines the read contract for product discounts.
// Discounts are managed out of band; order creation only consumes them.
type DiscountRepository interface {
	// GetActiveForProducts retrieves the discounts whose window covers the
	// given instant, keyed by product id. Products without an active
	// discount are absent from the map.
	GetActiveForProducts(ctx context.Context, productIDs []kernel.UUID, at time.Time) (map[kernel.UUID]*discount.Discount, error)
}
