package payment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment factory method or restored from persistence.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Method identifies how the customer paid. Proof is always uploaded manually;
// there is no payment-gateway callback.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodBankTransfer is a manual bank transfer with an uploaded receipt.
	MethodBankTransfer

	// MethodEWallet is an e-wallet transfer with an uploaded screenshot.
	MethodEWallet

	// MethodCashOnDelivery is payment on arrival, recorded by an admin.
	MethodCashOnDelivery
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:        "Unknown",
		MethodBankTransfer:   "bank_transfer",
		MethodEWallet:        "e_wallet",
		MethodCashOnDelivery: "cash_on_delivery",
	}
}

// MethodFromString parses a payment method as it appears on the wire.
func MethodFromString(s string) (Method, error) {
	for method, name := range getMethodStrings() {
		if name == s && method != MethodUnknown {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the wire name of the method.
func (m Method) String() string {
	if s, ok := getMethodStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the method is one of the known methods.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok || m == MethodUnknown {
		return errs.NewValueIsInvalidError("method")
	}
	return nil
}

// Payment records one payment attempt against an order. Payments are never
// deleted: rejected payments remain as the audit trail and a resubmission
// creates a new Payment.
//
// Invariants:
//   - At most one non-rejected Payment per order (enforced by the submit
//     command inside its transaction)
//   - Amount equals the order total at submission time (checked by the
//     submit command against the order)
//   - Verified/Rejected are reachable only from PendingVerification
type Payment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	method       Method
	amount       kernel.Money
	submittedAt  time.Time
	proofRef     string
	status       Status
	rejectReason string

	isConstructed bool
}

// NewPayment creates a Payment in PendingVerification status with its proof
// attached. Proof upload is what brings a payment into existence, so the
// AwaitingProof status only occurs for payments restored from older data.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - orderID: The order this payment settles
//   - method: How the customer paid
//   - amount: Submitted amount, expected to equal the order total
//   - proofRef: Opaque handle from the upload collaborator (required)
//   - now: Submission time
func NewPayment(id, orderID kernel.UUID, method Method, amount kernel.Money, proofRef string, now time.Time) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if proofRef == "" {
		return nil, errs.NewValueIsRequiredError("proofRef")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		method:        method,
		amount:        amount,
		submittedAt:   now,
		proofRef:      proofRef,
		status:        PendingVerification,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	method Method,
	amount kernel.Money,
	submittedAt time.Time,
	proofRef string,
	status Status,
	rejectReason string,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		method:        method,
		amount:        amount,
		submittedAt:   submittedAt,
		proofRef:      proofRef,
		status:        status,
		rejectReason:  rejectReason,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment was created through a factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order this payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Method returns how the customer paid.
func (p *Payment) Method() Method {
	return p.method
}

// Amount returns the submitted amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// SubmittedAt returns the proof submission time.
func (p *Payment) SubmittedAt() time.Time {
	return p.submittedAt
}

// ProofRef returns the opaque proof-of-payment reference.
func (p *Payment) ProofRef() string {
	return p.proofRef
}

// Status returns the current verification status.
func (p *Payment) Status() Status {
	return p.status
}

// RejectReason returns the admin's reason for a rejected payment, or "".
func (p *Payment) RejectReason() string {
	return p.rejectReason
}

// Verify marks the payment as accepted by an admin.
// Fails with IllegalTransitionError unless the payment is in
// PendingVerification; a concurrent second verify therefore observes the
// error instead of succeeding twice.
func (p *Payment) Verify() error {
	newStatus, err := p.status.Verify()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Reject marks the payment as refused by an admin, with a reason for the
// audit trail. Fails with IllegalTransitionError unless the payment is in
// PendingVerification.
func (p *Payment) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := p.status.Reject()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.rejectReason = reason
	return nil
}
