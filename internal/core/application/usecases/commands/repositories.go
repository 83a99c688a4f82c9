// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// DiscountRepoFactory provides access to the discount repository within a transaction.
	DiscountRepoFactory interface {
		DiscountRepository() ports.DiscountRepository
	}

	// EventRepoFactory provides access to the status event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// CheckoutUoW manages transactions for order creation: the order, the
	// inventory decrement, and the discount lookup happen atomically.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		DiscountRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderStatusUoW manages transactions for direct order transitions.
	// Cancellation may restock, so the product repository is included.
	OrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		EventRepoFactory
	}

	// OrderStatusUoWFactory creates new order status unit of work instances.
	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}

	// PaymentUoW manages transactions for payment operations together with
	// the derived order status change and its event.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		EventRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeliveryUoW manages transactions for delivery operations together with
	// the derived order status change and its event.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		EventRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// EventUoW manages transactions for the notification dispatch job.
	EventUoW interface {
		TxManager
		EventRepoFactory
	}

	// EventUoWFactory creates new event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}
)
