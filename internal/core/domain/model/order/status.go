package order

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> AwaitingPayment ──> PaymentSubmitted ──> Processing ──> Shipped ──> Completed
//	   │               │                │        ▲           │            │            │
//	   │               │                └────────┘           │            │            │
//	   │               │             (payment rejected)      │            ▼            ▼
//	   └───────────────┴──────> Cancelled <──────────────────┘         Returned <── Returned
//
// Cancelled is reachable from every pre-Shipped state. Returned is reachable
// only from Shipped and Completed. Cancelled and Returned are terminal;
// Completed is not, because the return window keeps Returned reachable.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is placed and stock is
	// reserved.
	Created

	// AwaitingPayment indicates the order is waiting for the customer to
	// submit proof of payment.
	AwaitingPayment

	// PaymentSubmitted indicates proof of payment has been attached and is
	// pending admin verification.
	PaymentSubmitted

	// Processing indicates the payment was verified and the order is being
	// prepared for shipment.
	Processing

	// Shipped indicates a delivery for the order has been dispatched.
	Shipped

	// Completed indicates the delivery arrived. A return is still possible.
	Completed

	// Cancelled indicates the order was called off before shipment. Terminal.
	Cancelled

	// Returned indicates a shipped or completed order came back. Terminal.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Created:          "Created",
		AwaitingPayment:  "AwaitingPayment",
		PaymentSubmitted: "PaymentSubmitted",
		Processing:       "Processing",
		Shipped:          "Shipped",
		Completed:        "Completed",
		Cancelled:        "Cancelled",
		Returned:         "Returned",
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

// legalTransitions is the authoritative transition table for Order.status.
// Every write path, direct or coordinator-derived, consults this table.
func legalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:          {AwaitingPayment, Cancelled},
		AwaitingPayment:  {PaymentSubmitted, Cancelled},
		PaymentSubmitted: {Processing, AwaitingPayment, Cancelled},
		Processing:       {Shipped, Cancelled},
		Shipped:          {Completed, Returned},
		Completed:        {Returned},
		Cancelled:        {},
		Returned:         {},
	}
}

// Validate checks that the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether moving from s to next is in the
// legal-transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range legalTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is legal, or an
// IllegalTransitionError leaving the caller's state untouched.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewIllegalTransitionError("order", s.String(), next.String())
	}
	return next, nil
}

// IsTerminal reports whether no further transitions are possible. Only
// Cancelled and Returned qualify; Completed does not while a return remains
// possible.
func (s Status) IsTerminal() bool {
	return len(legalTransitions()[s]) == 0
}

// IsPreShipment reports whether the order has not yet shipped. Cancellation
// and the accompanying stock release are only possible in these states.
func (s Status) IsPreShipment() bool {
	switch s {
	case Created, AwaitingPayment, PaymentSubmitted, Processing:
		return true
	default:
		return false
	}
}

// IsReadyForDelivery reports whether a delivery may be created for an order
// in this status. The order must have reached Processing.
func (s Status) IsReadyForDelivery() bool {
	switch s {
	case Processing, Shipped, Completed:
		return true
	default:
		return false
	}
}

// allowedForActor reports whether the given actor may request the direct
// transition s -> next. Customers may only cancel an unpaid order; admins may
// perform any transition the table allows.
func (s Status) allowedForActor(next Status, actor kernel.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return next == Cancelled && (s == Created || s == AwaitingPayment)
}
