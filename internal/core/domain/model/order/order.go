package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPaymentAlreadyAttached is returned when linking a second payment to an order.
	ErrPaymentAlreadyAttached = errors.New("order already has a payment attached")

	// ErrDeliveryAlreadyAttached is returned when linking a second delivery to an order.
	ErrDeliveryAlreadyAttached = errors.New("order already has a delivery attached")
)

// Order is the aggregate root for the fulfillment lifecycle. It is created
// atomically with its line items and the inventory decrement, and afterwards
// changes only through status transitions and append-only linkage to one
// Payment and one Delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must have at least one line item; each quantity is positive
//   - Line-item prices are snapshots, never recomputed
//   - Status transitions follow the legal-transition table in status.go
//   - Stock is released at most once per order (release marker)
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the externally owned customer identity
	customerID kernel.UUID

	// createdAt is the order placement time
	createdAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// lineItems is the cart snapshot, exclusively owned by this order
	lineItems []LineItem

	// paymentID links the at-most-one payment for this order
	paymentID *kernel.UUID

	// deliveryID links the at-most-one delivery for this order
	deliveryID *kernel.UUID

	// stockReleased marks that cancelled stock has been returned to the ledger
	stockReleased bool

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates an Order in Created status from a cart snapshot.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identity of the ordering customer
//   - items: Cart snapshot (must be non-empty; each item validated)
//   - now: Order placement time
//
// Returns the created order, or a validation error if any parameter is
// invalid. The inventory decrement accompanying creation is the caller's
// responsibility and must happen in the same transaction.
func NewOrder(id, customerID kernel.UUID, items []LineItem, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		createdAt:     now,
		status:        Created,
		lineItems:     append([]LineItem(nil), items...),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, linkage, and release marker. The stored status must be valid but is
// not re-derived.
func RestoreOrder(
	id, customerID kernel.UUID,
	createdAt time.Time,
	status Status,
	items []LineItem,
	paymentID, deliveryID *kernel.UUID,
	stockReleased bool,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentID = paymentID
	o.deliveryID = deliveryID
	o.stockReleased = stockReleased
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CreatedAt returns the order placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// Total returns the sum of all line-item subtotals.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, item := range o.lineItems {
		total = total.Add(item.Subtotal())
	}
	return total
}

// PaymentID returns the linked payment's ID, or nil if none is attached.
func (o *Order) PaymentID() *kernel.UUID {
	return o.paymentID
}

// DeliveryID returns the linked delivery's ID, or nil if none is attached.
func (o *Order) DeliveryID() *kernel.UUID {
	return o.deliveryID
}

// StockReleased reports whether cancelled stock has already been returned.
func (o *Order) StockReleased() bool {
	return o.stockReleased
}

// TransitionTo performs a direct, actor-initiated status transition.
//
// The move must be in the legal-transition table and permitted for the
// actor's role: customers may only cancel from Created or AwaitingPayment,
// admins may perform any table transition. On failure the order is left
// unchanged and an IllegalTransitionError is returned.
//
// Derived transitions triggered by payment or delivery state changes do not
// go through this method; they are applied by the status coordinator.
func (o *Order) TransitionTo(next Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewIllegalTransitionErrorWithCause("order", o.status.String(), next.String(),
			errors.New("order is in a terminal state"))
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if !o.status.allowedForActor(next, actor) {
		return errs.NewIllegalTransitionErrorWithCause("order", o.status.String(), next.String(),
			errors.New("not permitted for role "+actor.Role().String()))
	}

	o.status = newStatus
	return nil
}

// MarkPaymentSubmitted advances the order to PaymentSubmitted when proof of
// payment is attached. An order still in Created passes through
// AwaitingPayment implicitly. Coordinator use only.
func (o *Order) MarkPaymentSubmitted() error {
	if o.status == Created {
		o.status = AwaitingPayment
	}

	newStatus, err := o.status.TransitionTo(PaymentSubmitted)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkProcessing advances the order to Processing after payment verification.
// Coordinator use only.
func (o *Order) MarkProcessing() error {
	newStatus, err := o.status.TransitionTo(Processing)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RevertToAwaitingPayment moves a PaymentSubmitted order back so the customer
// can submit a new proof after rejection. Coordinator use only.
func (o *Order) RevertToAwaitingPayment() error {
	newStatus, err := o.status.TransitionTo(AwaitingPayment)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkShipped advances the order to Shipped when its delivery is dispatched.
// Coordinator use only.
func (o *Order) MarkShipped() error {
	newStatus, err := o.status.TransitionTo(Shipped)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkCompleted advances the order to Completed when its delivery arrives.
// Coordinator use only.
func (o *Order) MarkCompleted() error {
	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AttachPayment links the order's single payment. A second attachment fails
// with ErrPaymentAlreadyAttached; linkage is append-only.
func (o *Order) AttachPayment(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	if o.paymentID != nil {
		return ErrPaymentAlreadyAttached
	}

	o.paymentID = &paymentID
	return nil
}

// ReplacePayment relinks the order to a new payment after the previous one
// was rejected. The caller must have verified that the previous payment is in
// Rejected status.
func (o *Order) ReplacePayment(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	o.paymentID = &paymentID
	return nil
}

// AttachDelivery links the order's single delivery. A second attachment fails
// with ErrDeliveryAlreadyAttached; linkage is append-only.
func (o *Order) AttachDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if o.deliveryID != nil {
		return ErrDeliveryAlreadyAttached
	}

	o.deliveryID = &deliveryID
	return nil
}

// DetachDelivery removes the delivery linkage after a pre-dispatch delivery
// deletion, allowing a corrected delivery to be created.
func (o *Order) DetachDelivery() {
	o.deliveryID = nil
}

// ClaimStockRelease marks the order's stock as released and reports whether
// the caller should perform the release. A second claim for the same order
// returns false, making release idempotent per order.
func (o *Order) ClaimStockRelease() bool {
	if o.stockReleased {
		return false
	}
	o.stockReleased = true
	return true
}
