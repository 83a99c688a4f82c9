// Package order contains the Order aggregate root and its lifecycle state
// machine.
//
// An Order is created from a cart snapshot: its line items carry the unit
// price at order time and are never recomputed from the current catalog
// price. After creation an Order is immutable except for its status, the
// stock-release marker, and append-only linkage to at most one Payment and
// at most one Delivery.
//
// Status transitions follow a single legal-transition table. Direct
// transitions (an actor calling set-status) are validated against both the
// table and the actor's role; derived transitions (a payment or delivery
// changing state) are applied only by the status coordinator in
// internal/core/domain/services.
package order
