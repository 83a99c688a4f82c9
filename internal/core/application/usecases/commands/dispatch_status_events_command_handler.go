package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// DispatchStatusEventsCommandHandler drains unpublished order status change
// events to the notifier. Events the notifier accepted are marked published;
// a failed event stops the pass and is retried on the next one, so delivery
// is at-least-once and in feed order.
type DispatchStatusEventsCommandHandler struct {
	uowFactory EventUoWFactory
	notifier   ports.StatusNotifier
}

// NewDispatchStatusEventsCommandHandler creates a handler for the drain
// pass. Requires an EventUoWFactory and the notifier to deliver to.
func NewDispatchStatusEventsCommandHandler(
	uowFactory EventUoWFactory,
	notifier ports.StatusNotifier,
) DispatchStatusEventsCommandHandler {
	return DispatchStatusEventsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one drain pass and reports how many events were
// delivered.
func (h *DispatchStatusEventsCommandHandler) Handle(ctx context.Context, cmd DispatchStatusEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	events, err := uow.EventRepository().GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	published := make([]kernel.UUID, 0, len(events))
	for _, event := range events {
		if err = h.notifier.Notify(ctx, event); err != nil {
			break
		}
		published = append(published, event.ID)
	}

	if len(published) == 0 {
		return 0, err
	}

	if markErr := uow.EventRepository().MarkPublished(ctx, published); markErr != nil {
		return 0, markErr
	}
	if commitErr := uow.Commit(ctx); commitErr != nil {
		return 0, commitErr
	}

	return len(published), err
}
