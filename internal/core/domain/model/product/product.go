// Package product contains the Product aggregate. A product carries the
// catalog price and the stock count that the inventory ledger mutates at
// order creation and order cancellation.
package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method or restored from persistence.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the aggregate holding per-product stock. Stock is mutated only
// by order creation (reserve) and order cancellation before shipment
// (release); catalog edits to name and price are owned by the external
// catalog collaborator.
//
// Invariants:
//   - Stock count is never negative
//   - Unit price is never negative (enforced by kernel.Money)
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id        kernel.UUID
	name      string
	unitPrice kernel.Money
	stock     int

	isConstructed bool
}

// NewProduct creates a Product with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (required)
//   - unitPrice: Current catalog price
//   - stock: Initial stock count (must not be negative)
//
// Returns the created product, or a validation error if any parameter is
// invalid.
func NewProduct(id kernel.UUID, name string, unitPrice kernel.Money, stock int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Product{
		id:            id,
		name:          name,
		unitPrice:     unitPrice,
		stock:         stock,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a Product from persistence.
// The same invariants as NewProduct apply.
func RestoreProduct(id kernel.UUID, name string, unitPrice kernel.Money, stock int) (*Product, error) {
	return NewProduct(id, name, unitPrice, stock)
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Stock returns the current stock count.
func (p *Product) Stock() int {
	return p.stock
}

// Reserve decrements the stock count by the requested quantity.
//
// Returns InsufficientStockError naming this product when the request cannot
// be satisfied, leaving the stock unchanged. The caller is responsible for
// making a multi-product reservation all-or-nothing by performing every
// Reserve inside one transaction.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.stock < quantity {
		return errs.NewInsufficientStockError(p.id.String(), quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Release increments the stock count back after an order is cancelled before
// shipment. Idempotency per order is enforced by the Order's release marker,
// not here.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}
