package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand represents an actor-initiated direct order
// transition, such as a customer cancelling an unpaid order or an admin
// moving a shipped order to Returned. Derived transitions caused by payment
// or delivery changes never go through this command.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	next    order.Status
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to transition an order.
// Validates the order ID, the target status, and the acting principal.
// Whether the actor's role permits the transition is decided by the order
// aggregate inside the transaction, not here.
func NewSetOrderStatusCommand(orderID kernel.UUID, next order.Status, actor kernel.Actor) (SetOrderStatusCommand, error) {
	statusCommand := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNext(next),
		statusCommand.setActor(actor),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetOrderStatusCommandIsNotConstructed if validation fails.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the requested target status.
func (c SetOrderStatusCommand) Next() order.Status {
	return c.next
}

// Actor returns the acting principal.
func (c SetOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *SetOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
