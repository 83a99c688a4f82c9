// Package discount contains the product discount entity.
//
// A discount lowers a product's unit price by a whole percentage during a
// time window. It only affects the line-item price snapshot taken at order
// creation; existing orders are never recomputed.
package discount

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDiscountIsNotConstructed is returned when a Discount instance was not
// created through the NewDiscount factory method.
var ErrDiscountIsNotConstructed = errors.New("Discount must be created via NewDiscount constructor")

// Discount is a time-bounded percentage price reduction for one product.
type Discount struct {
	// id is the unique identifier for the discount
	id kernel.UUID

	// productID references the discounted product
	productID kernel.UUID

	// percentage is the whole-percent reduction, between 1 and 100
	percentage int

	// startsAt is the inclusive start of the discount window
	startsAt time.Time

	// endsAt is the exclusive end of the discount window
	endsAt time.Time

	// isConstructed ensures the discount was created via a factory function
	isConstructed bool
}

// NewDiscount creates a Discount for the given product and time window.
// The percentage must be between 1 and 100 and the window must be non-empty.
func NewDiscount(id, productID kernel.UUID, percentage int, startsAt, endsAt time.Time) (*Discount, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if percentage < 1 || percentage > 100 {
		return nil, errs.NewValueIsOutOfRangeError("percentage", percentage, 1, 100)
	}
	if !endsAt.After(startsAt) {
		return nil, errs.NewValueIsInvalidError("endsAt must be after startsAt")
	}

	return &Discount{
		id:            id,
		productID:     productID,
		percentage:    percentage,
		startsAt:      startsAt,
		endsAt:        endsAt,
		isConstructed: true,
	}, nil
}

// RestoreDiscount reconstructs a Discount from persistence.
func RestoreDiscount(id, productID kernel.UUID, percentage int, startsAt, endsAt time.Time) (*Discount, error) {
	return NewDiscount(id, productID, percentage, startsAt, endsAt)
}

// Validate ensures the Discount instance was properly constructed through a
// factory function.
func (d *Discount) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDiscountIsNotConstructed
	}
	return nil
}

// ID returns the discount's unique identifier.
func (d *Discount) ID() kernel.UUID {
	return d.id
}

// ProductID returns the identifier of the discounted product.
func (d *Discount) ProductID() kernel.UUID {
	return d.productID
}

// Percentage returns the whole-percent reduction.
func (d *Discount) Percentage() int {
	return d.percentage
}

// StartsAt returns the inclusive start of the discount window.
func (d *Discount) StartsAt() time.Time {
	return d.startsAt
}

// EndsAt returns the exclusive end of the discount window.
func (d *Discount) EndsAt() time.Time {
	return d.endsAt
}

// IsActiveAt reports whether the discount window covers the given instant.
func (d *Discount) IsActiveAt(now time.Time) bool {
	return !now.Before(d.startsAt) && now.Before(d.endsAt)
}

// Apply returns the discounted unit price, rounded down to the nearest minor
// unit. A 100 percent discount yields a zero price.
func (d *Discount) Apply(price kernel.Money) kernel.Money {
	discounted := price.Amount() * int64(100-d.percentage) / 100
	m, _ := kernel.NewMoney(discounted)
	return m
}
