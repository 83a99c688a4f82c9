package queries

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// OrderItemResponse represents one priced line of an order.
type OrderItemResponse struct {
	ProductID      kernel.UUID
	Quantity       int
	UnitPriceMinor int64
}

// OrderResponse represents a complete order for the API surface: header,
// line items, and linkage to the order's payment and delivery if present.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	CreatedAt  time.Time
	Status     string
	TotalMinor int64
	Items      []OrderItemResponse
	PaymentID  *kernel.UUID
	DeliveryID *kernel.UUID
}

// OrderSummaryResponse represents one row of an order listing. Line items
// are omitted; the total is precomputed by the query.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	CreatedAt  time.Time
	Status     string
	TotalMinor int64
}
