// Package discountrepo provides data transfer objects and mapping functions for discount persistence.
// Discounts are managed out of band; the fulfillment flow only reads them
// at checkout.
package discountrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DiscountDTO represents the database structure for persisting discounts.
type DiscountDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;index"`
	Percentage int
	StartsAt   time.Time
	EndsAt     time.Time
}

// TableName specifies the database table name for discount entities.
func (DiscountDTO) TableName() string {
	return "discounts"
}

// toDomain converts a database DTO to a discount domain entity using RestoreDiscount.
func toDomain(dto DiscountDTO) (*discount.Discount, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return discount.RestoreDiscount(id, productID, dto.Percentage, dto.StartsAt, dto.EndsAt)
}
