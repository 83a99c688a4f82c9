package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/services"
)

// VerifyPaymentCommandHandler handles payment verification. The payment
// moves to Verified and the order advances to Processing in one transaction.
type VerifyPaymentCommandHandler struct {
	uowFactory  PaymentUoWFactory
	coordinator services.StatusCoordinator
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
// Requires a PaymentUoWFactory for transactional persistence.
func NewVerifyPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	coordinator services.StatusCoordinator,
) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
	}
}

// Handle processes the verification command.
//
// Both the payment and its order are loaded under row locks, so the state
// check and the write happen inside one transaction and a racing second
// verify fails with IllegalTransitionError.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) (*payment.Payment, error) {
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

	if err = p.Verify(); err != nil {
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
