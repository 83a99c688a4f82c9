package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents an admin creating the shipment for an
// order. The shipping address is snapshotted onto the delivery. Setting
// override allows creation before the order reaches Processing; every
// override is logged.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	address    kernel.Address
	override   bool
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to create a delivery.
// The actor must hold the admin role and the address must be complete.
func NewCreateDeliveryCommand(
	deliveryID, orderID kernel.UUID,
	address kernel.Address,
	override bool,
	actor kernel.Actor,
) (CreateDeliveryCommand, error) {
	deliveryCommand := CreateDeliveryCommand{
		override: override,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setDeliveryID(deliveryID),
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setAddress(address),
		deliveryCommand.setActor(actor),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the identifier of the order being shipped.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the shipping destination to snapshot.
func (c CreateDeliveryCommand) Address() kernel.Address {
	return c.address
}

// Override reports whether the order-readiness check is bypassed.
func (c CreateDeliveryCommand) Override() bool {
	return c.override
}

// Actor returns the acting principal.
func (c CreateDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewIllegalOperationError("delivery", "creation requires the admin role")
	}

	c.actor = actor
	return nil
}
