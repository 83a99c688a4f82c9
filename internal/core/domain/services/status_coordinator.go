package services

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
)

// StatusCoordinator is a domain service that derives order status from
// payment and delivery transitions. It is the only component permitted to
// write Order.status as a side effect of another entity's transition; direct
// customer or admin transitions go through Order.TransitionTo instead. This
// separation prevents two independent write paths from racing to set the
// same field from different rules.
//
// Rule table, applied synchronously inside the triggering transaction:
//
//	payment  PendingVerification -> order PaymentSubmitted
//	payment  Verified            -> order Processing
//	payment  Rejected            -> order AwaitingPayment (resubmission)
//	delivery PendingShipment     -> order unchanged (stays Processing)
//	delivery Shipped             -> order Shipped
//	delivery InTransit           -> order unchanged
//	delivery Delivered           -> order Completed
//	delivery Failed              -> order unchanged (admin resolves manually)
//
// Each applied rule yields a StatusChangedEvent the caller persists in the
// same transaction.
type StatusCoordinator struct{}

// NewStatusCoordinator creates a new StatusCoordinator instance.
func NewStatusCoordinator() StatusCoordinator {
	return StatusCoordinator{}
}

// OnPaymentStatusChanged applies the payment rule for the given order. It
// returns the recorded event, or nil when the rule table maps the payment
// status to no order change. On a rule violation the order is left unchanged
// and the transition error is returned.
func (c StatusCoordinator) OnPaymentStatusChanged(
	o *order.Order,
	paymentStatus payment.Status,
	now time.Time,
) (*order.StatusChangedEvent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	from := o.Status()

	var err error
	switch paymentStatus {
	case payment.PendingVerification:
		err = o.MarkPaymentSubmitted()
	case payment.Verified:
		err = o.MarkProcessing()
	case payment.Rejected:
		err = o.RevertToAwaitingPayment()
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	event := order.NewStatusChangedEvent(o.ID(), from, o.Status(), order.SourcePayment, now)
	return &event, nil
}

// OnDeliveryStatusChanged applies the delivery rule for the given order. It
// returns the recorded event, or nil when the rule table maps the delivery
// status to no order change. On a rule violation the order is left unchanged
// and the transition error is returned.
func (c StatusCoordinator) OnDeliveryStatusChanged(
	o *order.Order,
	deliveryStatus delivery.Status,
	now time.Time,
) (*order.StatusChangedEvent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	from := o.Status()

	var err error
	switch deliveryStatus {
	case delivery.Shipped:
		err = o.MarkShipped()
	case delivery.Delivered:
		err = o.MarkCompleted()
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	event := order.NewStatusChangedEvent(o.ID(), from, o.Status(), order.SourceDelivery, now)
	return &event, nil
}

// RecordDirectTransition creates the event for an actor-initiated transition
// the caller already applied through Order.TransitionTo.
func (c StatusCoordinator) RecordDirectTransition(
	o *order.Order,
	from order.Status,
	now time.Time,
) order.StatusChangedEvent {
	return order.NewStatusChangedEvent(o.ID(), from, o.Status(), order.SourceOrder, now)
}
