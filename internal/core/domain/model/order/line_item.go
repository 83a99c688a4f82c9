package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when validating a zero-value LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a priced quantity of one product snapshotted at order-creation
// time. The unit price is the price the customer saw at checkout, after any
// active discount, and is never recomputed from the current catalog price.
//
// LineItem is an immutable value object owned exclusively by its Order.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with validation.
// Quantity must be greater than 0.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.Mul(li.quantity)
}
