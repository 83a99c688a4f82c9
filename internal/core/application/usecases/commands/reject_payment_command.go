package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectPaymentCommandIsNotConstructed = errors.New(
	"RejectPaymentCommand must be created via NewRejectPaymentCommand constructor",
)

// RejectPaymentCommand represents an admin rejecting a submitted proof of
// payment with a reason the customer will see. The order reverts to
// AwaitingPayment so a fresh proof can be submitted.
type RejectPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	reason    string
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewRejectPaymentCommand creates a command to reject a payment.
// The actor must hold the admin role and the reason must be non-empty.
func NewRejectPaymentCommand(paymentID kernel.UUID, reason string, actor kernel.Actor) (RejectPaymentCommand, error) {
	rejectCommand := RejectPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setPaymentID(paymentID),
		rejectCommand.setReason(reason),
		rejectCommand.setActor(actor),
	); err != nil {
		return RejectPaymentCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectPaymentCommandIsNotConstructed if validation fails.
func (c RejectPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRejectPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to reject.
func (c RejectPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Reason returns the customer-visible rejection reason.
func (c RejectPaymentCommand) Reason() string {
	return c.reason
}

// Actor returns the acting principal.
func (c RejectPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RejectPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RejectPaymentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *RejectPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewIllegalOperationError("payment", "rejection requires the admin role")
	}

	c.actor = actor
	return nil
}
