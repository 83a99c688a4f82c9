package delivery

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the shipment state of a delivery.
//
// Transitions are forward-only:
//
//	PendingShipment ──> Shipped ──> InTransit ──> Delivered
//	       │               │            │
//	       └───────────────┴────────────┴──> Failed
//
// Failed is reachable from every state except Delivered. Delivered and
// Failed are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingShipment is the initial status of a freshly created delivery.
	// Only deliveries in this status may be deleted.
	PendingShipment

	// Shipped indicates the shipment left the warehouse.
	Shipped

	// InTransit indicates the shipment is with the carrier.
	InTransit

	// Delivered indicates the shipment arrived. Terminal.
	Delivered

	// Failed indicates the shipment was lost or returned undeliverable.
	// Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		PendingShipment: "PendingShipment",
		Shipped:         "Shipped",
		InTransit:       "InTransit",
		Delivered:       "Delivered",
		Failed:          "Failed",
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

// legalTransitions is the authoritative transition table for Delivery.status.
func legalTransitions() map[Status][]Status {
	return map[Status][]Status{
		PendingShipment: {Shipped, Failed},
		Shipped:         {InTransit, Failed},
		InTransit:       {Delivered, Failed},
		Delivered:       {},
		Failed:          {},
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
		return Unknown, errs.NewIllegalTransitionError("delivery", s.String(), next.String())
	}
	return next, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(legalTransitions()[s]) == 0
}
