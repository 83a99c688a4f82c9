// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return flat response structures, never
// domain aggregates.
package queries
