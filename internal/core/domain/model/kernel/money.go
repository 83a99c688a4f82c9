package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (e.g. whole rupiah). Amounts are never negative.
//
// Money is immutable: arithmetic methods return a new Money value. All prices
// in the domain (product unit prices, line-item snapshots, payment amounts)
// are Money values, so amount comparisons are exact integer comparisons with
// no floating-point involvement.
//
// The zero value of Money is a valid zero amount.
//
// Example usage:
//
//	price, err := kernel.NewMoney(10000)
//	if err != nil {
//	    // handle error
//	}
//	subtotal := price.Mul(2) // 20000
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor currency units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Mul returns the Money value multiplied by a non-negative quantity.
func (m Money) Mul(qty int) Money {
	return Money{amount: m.amount * int64(qty)}
}

// IsEqual compares two Money values for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted as a plain integer string.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
