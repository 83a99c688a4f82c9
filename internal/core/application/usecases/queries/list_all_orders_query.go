package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery retrieves every order in the system, newest first.
// Intended for the back-office listing.
type ListAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery creates a query for the full order listing.
func NewListAllOrdersQuery() ListAllOrdersQuery {
	return ListAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListAllOrdersQueryIsNotConstructed if validation fails.
func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}
