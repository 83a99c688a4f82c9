package commands

import (
	"context"
)

// DeleteDeliveryCommandHandler handles pre-dispatch delivery deletion. The
// delivery row and the order's delivery linkage are removed together so a
// corrected delivery can be created afterwards.
type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery deletion.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
//
// Only a PendingShipment delivery may be deleted; anything later fails with
// IllegalOperationError and leaves the delivery in place.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if err = d.EnsureDeletable(); err != nil {
		return err
	}

	o, err := uow.OrderRepository().GetForUpdate(ctx, d.OrderID())
	if err != nil {
		return err
	}
	o.DetachDelivery()

	if err = uow.DeliveryRepository().Delete(ctx, d.ID()); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
