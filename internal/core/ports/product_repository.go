package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the inventory
// ledger.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists stock changes for an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves several products under row locks held until the
	// surrounding transaction ends. Locks are acquired in ascending product
	// id order so two simultaneous multi-item checkouts cannot deadlock.
	// Returns ObjectNotFoundError naming the first missing product.
	GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
