package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/services"
)

// RejectPaymentCommandHandler handles payment rejection. The payment moves
// to Rejected and the order reverts to AwaitingPayment in one transaction,
// clearing the way for a resubmission. The rejected payment itself is never
// deleted; it remains in the audit trail.
type RejectPaymentCommandHandler struct {
	uowFactory  PaymentUoWFactory
	coordinator services.StatusCoordinator
}

// NewRejectPaymentCommandHandler creates a handler for payment rejection.
// Requires a PaymentUoWFactory for transactional persistence.
func NewRejectPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	coordinator services.StatusCoordinator,
) RejectPaymentCommandHandler {
	return RejectPaymentCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
	}
}

// Handle processes the rejection command.
func (h *RejectPaymentCommandHandler) Handle(ctx context.Context, cmd RejectPaymentCommand) (*payment.Payment, error) {
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

	p, err := uow.PaymentRepository().GetForUpdate(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}
	o, err := uow.OrderRepository().GetForUpdate(ctx, p.OrderID())
	if err != nil {
		return nil, err
	}

	if err = p.Reject(cmd.Reason()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event, err := h.coordinator.OnPaymentStatusChanged(o, p.Status(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Update(ctx, p); err != nil {
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

	return p, nil
}
