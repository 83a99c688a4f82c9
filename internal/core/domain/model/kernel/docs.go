// Package kernel contains shared value objects used across the fulfillment
// domain: UUID identifiers, Money amounts, Address snapshots, and the Actor
// performing a state-mutating operation.
//
// All kernel types are immutable value objects. Their zero values are invalid
// and must be constructed through the provided factory functions, which
// validate every field. This keeps the aggregates that embed them free of
// per-field validation.
package kernel
