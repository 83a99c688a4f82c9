package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/services"
)

// UpdateDeliveryStatusCommandHandler handles shipment progress. The delivery
// transition and the derived order transition commit together: Shipped
// advances the order to Shipped, Delivered advances it to Completed.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	coordinator services.StatusCoordinator
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for shipment
// progress. Requires a DeliveryUoWFactory for transactional persistence.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	coordinator services.StatusCoordinator,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
	}
}

// Handle processes the shipment progress command.
//
// The shipment machine is forward-only; a backward or skipping move fails
// with IllegalTransitionError and leaves both the delivery and the order
// unchanged.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}
	o, err := uow.OrderRepository().GetForUpdate(ctx, d.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if cmd.TrackingNumber() != "" {
		if err = d.SetTrackingNumber(cmd.TrackingNumber()); err != nil {
			return nil, err
		}
	}
	if err = d.TransitionTo(cmd.Next(), now); err != nil {
		return nil, err
	}

	event, err := h.coordinator.OnDeliveryStatusChanged(o, d.Status(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	if event != nil {
		if err = uow.EventRepository().Append(ctx, *event); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
