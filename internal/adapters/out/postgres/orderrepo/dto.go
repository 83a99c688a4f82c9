// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table; header and items are written together
// and the header row carries the payment and delivery linkage.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	Status        int
	PaymentID     *uuid.UUID `gorm:"type:uuid"`
	DeliveryID    *uuid.UUID `gorm:"type:uuid"`
	StockReleased bool
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced line of an order. The line number
// preserves the order in which items were submitted at checkout.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo    int       `gorm:"primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, one header row plus one row per line item.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	var paymentID *uuid.UUID
	if id := aggregate.PaymentID(); id != nil {
		raw := id.Bytes()
		paymentID = &raw
	}

	var deliveryID *uuid.UUID
	if id := aggregate.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	header := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		CreatedAt:     aggregate.CreatedAt(),
		Status:        int(aggregate.Status()),
		PaymentID:     paymentID,
		DeliveryID:    deliveryID,
		StockReleased: aggregate.StockReleased(),
	}

	lineItems := aggregate.LineItems()
	items := make([]OrderItemDTO, 0, len(lineItems))
	for i, item := range lineItems {
		items = append(items, OrderItemDTO{
			OrderID:   header.ID,
			LineNo:    i + 1,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return header, items
}

// toDomain converts database rows back to an order domain aggregate.
// Reconstructs the complete aggregate including status and linkage using
// RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	paymentID, err := optionalUUID(dto.PaymentID)
	if err != nil {
		return nil, err
	}

	deliveryID, err := optionalUUID(dto.DeliveryID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID,
		dto.CreatedAt,
		order.Status(dto.Status),
		items,
		paymentID, deliveryID,
		dto.StockReleased,
	)
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
