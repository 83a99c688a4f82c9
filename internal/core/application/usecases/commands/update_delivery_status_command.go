package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents an admin advancing a shipment.
// Progress to Shipped or Delivered feeds back into the order's status. An
// optional tracking number may be recorded together with the transition.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	next           delivery.Status
	trackingNumber string
	actor          kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to advance a delivery.
// The actor must hold the admin role. The tracking number may be empty.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	next delivery.Status,
	trackingNumber string,
	actor kernel.Actor,
) (UpdateDeliveryStatusCommand, error) {
	statusCommand := UpdateDeliveryStatusCommand{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setDeliveryID(deliveryID),
		statusCommand.setNext(next),
		statusCommand.setActor(actor),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to advance.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Next returns the requested target status.
func (c UpdateDeliveryStatusCommand) Next() delivery.Status {
	return c.next
}

// TrackingNumber returns the carrier reference to record, empty for none.
func (c UpdateDeliveryStatusCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Actor returns the acting principal.
func (c UpdateDeliveryStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNext(next delivery.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *UpdateDeliveryStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewIllegalOperationError("delivery", "status edits require the admin role")
	}

	c.actor = actor
	return nil
}
