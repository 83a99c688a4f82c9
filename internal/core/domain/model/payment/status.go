// Package payment contains the Payment aggregate: one manual payment attempt
// against an order, carrying the proof-of-payment reference and the
// verification state machine.
package payment

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the verification state of a payment.
//
// State transitions:
//
//	AwaitingProof ──> PendingVerification ──┬──> Verified
//	                                        └──> Rejected
//
// Verified and Rejected are terminal. A rejected payment is kept for the
// audit trail; resubmission creates a new Payment.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// AwaitingProof is a payment record without a proof reference yet.
	AwaitingProof

	// PendingVerification indicates proof is attached and awaiting an admin
	// decision.
	PendingVerification

	// Verified indicates an admin accepted the proof. Terminal.
	Verified

	// Rejected indicates an admin refused the proof. Terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		AwaitingProof:       "AwaitingProof",
		PendingVerification: "PendingVerification",
		Verified:            "Verified",
		Rejected:            "Rejected",
	}
}

// StatusFromString parses a status name as it appears on the wire.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettledOrPending reports whether this payment blocks a new submission for
// the same order. Only rejected payments allow a resubmission.
func (s Status) IsSettledOrPending() bool {
	return s == AwaitingProof || s == PendingVerification || s == Verified
}

// Verify transitions the status to Verified.
// Only legal from PendingVerification; the same check inside the same
// transaction guards against double-verification races.
func (s Status) Verify() (Status, error) {
	if s != PendingVerification {
		return Unknown, errs.NewIllegalTransitionError("payment", s.String(), Verified.String())
	}
	return Verified, nil
}

// Reject transitions the status to Rejected.
// Only legal from PendingVerification.
func (s Status) Reject() (Status, error) {
	if s != PendingVerification {
		return Unknown, errs.NewIllegalTransitionError("payment", s.String(), Rejected.String())
	}
	return Rejected, nil
}
