package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAllOrdersQueryHandler retrieves the full order listing from the
// database.
type ListAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListAllOrdersQueryHandler creates a handler for the full order listing.
// Requires a GORM database connection for query execution.
func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first with their
// totals precomputed from line items.
func (h ListAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAllOrdersQuery,
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
		GROUP BY o.id, o.customer_id, o.created_at, o.status
		ORDER BY o.created_at DESC, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries maps listing rows to summary responses. Both listing
// queries share the same column set.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			createdAt  time.Time
			status     int
			total      int64
		)
		if err := rows.Scan(&id, &customerID, &createdAt, &status, &total); err != nil {
			return nil, err
		}

		var summary OrderSummaryResponse
		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = orderID

		ownerID, err := kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		summary.CustomerID = ownerID

		summary.CreatedAt = createdAt
		summary.Status = order.Status(status).String()
		summary.TotalMinor = total
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
