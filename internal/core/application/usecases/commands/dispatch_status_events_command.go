package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrDispatchStatusEventsCommandIsNotConstructed = errors.New(
	"DispatchStatusEventsCommand must be created via NewDispatchStatusEventsCommand constructor",
)

// DispatchStatusEventsCommand represents one drain pass over the unpublished
// status change events, bounded by a batch size.
type DispatchStatusEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchStatusEventsCommand creates a command to drain the event feed.
// The batch size must be positive.
func NewDispatchStatusEventsCommand(batchSize int) (DispatchStatusEventsCommand, error) {
	dispatchCommand := DispatchStatusEventsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if batchSize <= 0 {
		return DispatchStatusEventsCommand{}, errs.NewValueIsInvalidError("batchSize")
	}
	dispatchCommand.batchSize = batchSize

	return dispatchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchStatusEventsCommandIsNotConstructed if validation fails.
func (c DispatchStatusEventsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchStatusEventsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of events drained per pass.
func (c DispatchStatusEventsCommand) BatchSize() int {
	return c.batchSize
}
