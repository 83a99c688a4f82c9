package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Transactions carry a bounded lock timeout; an operation that cannot
// acquire its row locks in time fails with a retryable ContentionError
// instead of blocking indefinitely.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// DiscountRepository returns a DiscountRepository bound to the current transaction.
	DiscountRepository() DiscountRepository

	// EventRepository returns an EventRepository bound to the current transaction.
	EventRepository() EventRepository
}
