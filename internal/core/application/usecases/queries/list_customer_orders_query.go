package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery retrieves all orders that belong to one customer,
// newest first.
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates a query for one customer's order history.
func NewListCustomerOrdersQuery(customerID kernel.UUID) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	return ListCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListCustomerOrdersQueryIsNotConstructed if validation fails.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders are listed.
func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}
