package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitPaymentProofCommandIsNotConstructed = errors.New(
	"SubmitPaymentProofCommand must be created via NewSubmitPaymentProofCommand constructor",
)

// SubmitPaymentProofCommand represents a customer attaching proof of payment
// to an order. The amount is carried in minor currency units and must match
// the order total exactly; the proof reference is an opaque handle issued by
// the upload collaborator.
type SubmitPaymentProofCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	orderID     kernel.UUID
	method      payment.Method
	amountMinor int64
	proofRef    string

	guard guard.ConstructorGuard
}

// NewSubmitPaymentProofCommand creates a command to submit proof of payment.
// Validates both IDs, the method, a non-negative amount, and a non-empty
// proof reference. Whether the amount matches the order total is checked
// inside the transaction, not here.
func NewSubmitPaymentProofCommand(
	paymentID, orderID kernel.UUID,
	method payment.Method,
	amountMinor int64,
	proofRef string,
) (SubmitPaymentProofCommand, error) {
	proofCommand := SubmitPaymentProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		proofCommand.setPaymentID(paymentID),
		proofCommand.setOrderID(orderID),
		proofCommand.setMethod(method),
		proofCommand.setAmountMinor(amountMinor),
		proofCommand.setProofRef(proofRef),
	); err != nil {
		return SubmitPaymentProofCommand{}, err
	}

	return proofCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitPaymentProofCommandIsNotConstructed if validation fails.
func (c SubmitPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentProofCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the new payment.
func (c SubmitPaymentProofCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being paid.
func (c SubmitPaymentProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment method.
func (c SubmitPaymentProofCommand) Method() payment.Method {
	return c.method
}

// AmountMinor returns the claimed amount in minor currency units.
func (c SubmitPaymentProofCommand) AmountMinor() int64 {
	return c.amountMinor
}

// ProofRef returns the opaque proof-of-payment reference.
func (c SubmitPaymentProofCommand) ProofRef() string {
	return c.proofRef
}

func (c *SubmitPaymentProofCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *SubmitPaymentProofCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitPaymentProofCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *SubmitPaymentProofCommand) setAmountMinor(amountMinor int64) error {
	if amountMinor < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amountMinor = amountMinor
	return nil
}

func (c *SubmitPaymentProofCommand) setProofRef(proofRef string) error {
	if proofRef == "" {
		return errs.NewValueIsRequiredError("proofRef")
	}

	c.proofRef = proofRef
	return nil
}
