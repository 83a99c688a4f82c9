package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand represents a pre-dispatch correction: an admin
// removing a delivery that has not shipped yet so a corrected one can be
// created.
type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryCommand creates a command to delete a delivery.
// The actor must hold the admin role.
func NewDeleteDeliveryCommand(deliveryID kernel.UUID, actor kernel.Actor) (DeleteDeliveryCommand, error) {
	deleteCommand := DeleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setDeliveryID(deliveryID),
		deleteCommand.setActor(actor),
	); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteDeliveryCommandIsNotConstructed if validation fails.
func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to delete.
func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the acting principal.
func (c DeleteDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *DeleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *DeleteDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewIllegalOperationError("delivery", "deletion requires the admin role")
	}

	c.actor = actor
	return nil
}
