package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles delivery creation. A delivery may
// only be created once the order reached Processing, unless an admin
// explicitly overrides the check; overrides are logged for audit.
type CreateDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	coordinator services.StatusCoordinator
	logger      *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// Requires a DeliveryUoWFactory for transactional persistence and a logger
// for the override audit trail.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	coordinator services.StatusCoordinator,
	logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		logger:      logger,
	}
}

// Handle processes the delivery creation command.
//
// Fails with OrderNotReadyError when the order has not reached Processing
// and no override was requested, and with DuplicateDeliveryError when the
// order already has a delivery. The new delivery starts in PendingShipment
// and the order status is left unchanged.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	existing, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewDuplicateDeliveryError(cmd.OrderID().String())
	}

	if !o.Status().IsReadyForDelivery() {
		if !cmd.Override() {
			return nil, errs.NewOrderNotReadyError(cmd.OrderID().String(), o.Status().String())
		}
		h.logger.Warn("delivery created before order reached Processing",
			"order_id", cmd.OrderID().String(),
			"order_status", o.Status().String(),
			"admin_id", cmd.Actor().ID().String(),
		)
	}

	now := time.Now().UTC()
	d, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.OrderID(), cmd.Address(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}
	if err = o.AttachDelivery(d.ID()); err != nil {
		return nil, err
	}

	event, err := h.coordinator.OnDeliveryStatusChanged(o, d.Status(), now)
	if err != nil {
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
