package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler retrieves a customer's order history from
// the database.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerOrdersQueryHandler creates a handler for customer order
// listings. Requires a GORM database connection for query execution.
func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first with their
// totals precomputed from line items. A customer with no orders yields an
// empty slice, not an error.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.created_at,
			o.status,
			COALESCE(SUM(i.quantity * i.unit_price), 0) AS total
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id, o.customer_id, o.created_at, o.status
		ORDER BY o.created_at DESC, o.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
