package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired      = errors.New("at least one item is required")
	ErrDuplicateItemProducts = errors.New("items must reference distinct products")
)

// OrderItemInput is one cart line in a create-order request.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a checkout request: a cart snapshot to turn
// into an order with its inventory decrement.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid cart: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both IDs are valid and the cart is non-empty with positive
// quantities and distinct products. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID, customerID kernel.UUID, items []OrderItemInput) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identity of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the cart snapshot.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[kernel.UUID]bool, len(items))
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
		if seen[item.ProductID] {
			return ErrDuplicateItemProducts
		}
		seen[item.ProductID] = true
	}

	c.items = append([]OrderItemInput(nil), items...)
	return nil
}
