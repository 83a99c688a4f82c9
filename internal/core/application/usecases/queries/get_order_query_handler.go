package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no order with
// the given ID exists. Line items keep their insertion order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var header struct {
		ID         uuid.UUID
		CustomerID uuid.UUID
		CreatedAt  time.Time
		Status     int
		PaymentID  *uuid.UUID
		DeliveryID *uuid.UUID
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			created_at,
			status,
			payment_id,
			delivery_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Take(&header).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		Status: order.Status(header.Status).String(),
	}
	if resp.ID, err = kernel.UUIDFromBytes(header.ID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(header.CustomerID[:]); err != nil {
		return OrderResponse{}, err
	}
	resp.CreatedAt = header.CreatedAt
	if resp.PaymentID, err = optionalUUID(header.PaymentID); err != nil {
		return OrderResponse{}, err
	}
	if resp.DeliveryID, err = optionalUUID(header.DeliveryID); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY line_no
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			quantity  int
			unitPrice int64
		)
		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return OrderResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:      id,
			Quantity:       quantity,
			UnitPriceMinor: unitPrice,
		})
		resp.TotalMinor += unitPrice * int64(quantity)
	}
	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
