// Package productrepo provides data transfer objects and mapping functions for product persistence.
// Products carry the authoritative stock counts, so every mutation goes
// through rows locked in ascending product ID order.
package productrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	UnitPrice int64
	Stock     int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		UnitPrice: aggregate.UnitPrice().Amount(),
		Stock:     aggregate.Stock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, unitPrice, dto.Stock)
}
