package kernel

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a value object holding a shipping destination.
//
// A Delivery stores an Address as a snapshot copied at creation time, not a
// live reference to the customer profile: later customer address edits never
// retroactively alter a dispatched delivery.
//
// All four fields are required. The zero value is invalid and must be created
// through NewAddress.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address from its four required components.
// Returns a validation error naming the first missing field.
func NewAddress(street, city, postalCode, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if postalCode == "" {
		return Address{}, errs.NewValueIsRequiredError("postalCode")
	}
	if country == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}
