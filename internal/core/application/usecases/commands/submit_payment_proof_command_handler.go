package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// SubmitPaymentProofCommandHandler handles proof-of-payment submission.
// A new payment enters PendingVerification and moves the order to
// PaymentSubmitted in the same transaction.
type SubmitPaymentProofCommandHandler struct {
	uowFactory  PaymentUoWFactory
	coordinator services.StatusCoordinator
}

// NewSubmitPaymentProofCommandHandler creates a handler for proof submission.
// Requires a PaymentUoWFactory for transactional persistence.
func NewSubmitPaymentProofCommandHandler(
	uowFactory PaymentUoWFactory,
	coordinator services.StatusCoordinator,
) SubmitPaymentProofCommandHandler {
	return SubmitPaymentProofCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
	}
}

// Handle processes the proof submission command.
//
// Fails with DuplicatePaymentError when the order already has a payment that
// is not Rejected, and with AmountMismatchError when the claimed amount
// differs from the order total. After a rejection a fresh payment replaces
// the old one; the rejected payment stays in the audit trail.
func (h *SubmitPaymentProofCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentProofCommand) (*payment.Payment, error) {
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

	active, err := uow.PaymentRepository().GetActiveByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if active != nil {
		return nil, errs.NewDuplicatePaymentError(cmd.OrderID().String())
	}

	if cmd.AmountMinor() != o.Total().Amount() {
		return nil, errs.NewAmountMismatchError(cmd.OrderID().String(), o.Total().Amount(), cmd.AmountMinor())
	}

	amount, err := kernel.NewMoney(cmd.AmountMinor())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), cmd.Method(), amount, cmd.ProofRef(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if o.PaymentID() == nil {
		err = o.AttachPayment(p.ID())
	} else {
		err = o.ReplacePayment(p.ID())
	}
	if err != nil {
		return nil, err
	}

	event, err := h.coordinator.OnPaymentStatusChanged(o, p.Status(), now)
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

	return p, nil
}
