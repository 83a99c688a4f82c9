package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand represents an admin confirming a submitted proof of
// payment. Verification is only legal from PendingVerification; a concurrent
// second verify observes IllegalTransition rather than succeeding twice.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command to verify a payment.
// The actor must hold the admin role.
func NewVerifyPaymentCommand(paymentID kernel.UUID, actor kernel.Actor) (VerifyPaymentCommand, error) {
	verifyCommand := VerifyPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setPaymentID(paymentID),
		verifyCommand.setActor(actor),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyPaymentCommandIsNotConstructed if validation fails.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to verify.
func (c VerifyPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Actor returns the acting principal.
func (c VerifyPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *VerifyPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *VerifyPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewIllegalOperationError("payment", "verification requires the admin role")
	}

	c.actor = actor
	return nil
}
