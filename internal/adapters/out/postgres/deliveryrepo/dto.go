// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The unique order_id index enforces at most one delivery per order at the
// storage level, backing the duplicate check in the application layer.
type DeliveryDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Status         int
	TrackingNumber string
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents the embedded destination address within the delivery table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	address := aggregate.Address()
	return DeliveryDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Status:         int(aggregate.Status()),
		TrackingNumber: aggregate.TrackingNumber(),
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.PostalCode,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID,
		delivery.Status(dto.Status),
		dto.TrackingNumber,
		address,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
