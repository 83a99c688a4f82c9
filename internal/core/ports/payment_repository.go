package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// Payments are an audit trail and are never deleted.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists a verification or rejection of an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetForUpdate retrieves a payment aggregate under a row lock held until
	// the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetActiveByOrderID retrieves the order's payment that is not Rejected,
	// or ObjectNotFoundError when every payment for the order was rejected
	// or none exists. Duplicate-payment checks use this lookup so a rejected
	// payment does not block resubmission.
	GetActiveByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
