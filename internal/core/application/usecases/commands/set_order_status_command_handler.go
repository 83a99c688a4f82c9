package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// SetOrderStatusCommandHandler handles actor-initiated order transitions.
// Cancelling a pre-shipment order releases its reserved stock exactly once,
// in the same transaction as the status change.
type SetOrderStatusCommandHandler struct {
	uowFactory  OrderStatusUoWFactory
	coordinator services.StatusCoordinator
}

// NewSetOrderStatusCommandHandler creates a handler for direct order
// transitions. Requires an OrderStatusUoWFactory for transactional
// persistence.
func NewSetOrderStatusCommandHandler(
	uowFactory OrderStatusUoWFactory,
	coordinator services.StatusCoordinator,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
	}
}

// Handle processes the transition command.
//
// Loads the order under a row lock, applies the transition through the
// legal-transition table with the actor's role checked, restocks on
// pre-shipment cancellation, and records the status change event. An illegal
// move leaves the order unchanged and surfaces IllegalTransitionError.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
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

	from := o.Status()
	if err = o.TransitionTo(cmd.Next(), cmd.Actor()); err != nil {
		return nil, err
	}

	if cmd.Next() == order.Cancelled && from.IsPreShipment() && o.ClaimStockRelease() {
		if err = h.restock(ctx, uow, o); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	event := h.coordinator.RecordDirectTransition(o, from, time.Now().UTC())
	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// restock returns every reserved line-item quantity to the inventory ledger.
func (h *SetOrderStatusCommandHandler) restock(ctx context.Context, uow OrderStatusUoW, o *order.Order) error {
	items := o.LineItems()
	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID())
	}

	products, err := uow.ProductRepository().GetForUpdate(ctx, productIDs)
	if err != nil {
		return err
	}
	productByID := make(map[kernel.UUID]int, len(products))
	for i, p := range products {
		productByID[p.ID()] = i
	}

	for _, item := range items {
		p := products[productByID[item.ProductID()]]
		if err = p.Release(item.Quantity()); err != nil {
			return err
		}
		if err = uow.ProductRepository().Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
