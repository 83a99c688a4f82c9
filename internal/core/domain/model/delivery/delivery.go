package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery factory method.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the aggregate root for one shipment tied to an order. The
// shipping address is snapshotted at creation time, so later customer address
// edits do not retroactively alter a dispatched delivery.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and order reference
//   - At most one delivery exists per order (enforced at the store)
//   - Status transitions follow the legal-transition table in status.go
//   - Deletable only while still PendingShipment
//   - Can only be created through NewDelivery or RestoreDelivery
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// orderID references the order being shipped
	orderID kernel.UUID

	// status is the current state in the shipment lifecycle
	status Status

	// trackingNumber is the carrier reference, set when the shipment leaves
	trackingNumber string

	// address is the shipping destination snapshotted at creation
	address kernel.Address

	// createdAt is the delivery creation time
	createdAt time.Time

	// updatedAt is the time of the last status change
	updatedAt time.Time

	// isConstructed ensures the delivery was created via a factory function
	isConstructed bool
}

// NewDelivery creates a Delivery in PendingShipment status with the given
// address snapshot. The order-readiness and uniqueness checks are the
// caller's responsibility and must happen in the same transaction.
func NewDelivery(id, orderID kernel.UUID, address kernel.Address, now time.Time) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		status:        PendingShipment,
		address:       address,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence. The stored status
// must be valid but is not re-derived.
func RestoreDelivery(
	id, orderID kernel.UUID,
	status Status,
	trackingNumber string,
	address kernel.Address,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, address, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.trackingNumber = trackingNumber
	d.updatedAt = updatedAt
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through a
// factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being shipped.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// TrackingNumber returns the carrier reference, empty until the shipment
// leaves.
func (d *Delivery) TrackingNumber() string {
	return d.trackingNumber
}

// Address returns the shipping destination snapshot.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// CreatedAt returns the delivery creation time.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the time of the last status change.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// TransitionTo performs an admin-initiated shipment transition. The move must
// be in the legal-transition table; on failure the delivery is left unchanged
// and an IllegalTransitionError is returned.
func (d *Delivery) TransitionTo(next Status, now time.Time) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.updatedAt = now
	return nil
}

// SetTrackingNumber records the carrier reference. A tracking number cannot
// be set on a delivery that has already arrived or failed.
func (d *Delivery) SetTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if d.status.IsTerminal() {
		return errs.NewIllegalOperationError("delivery",
			"tracking number cannot change once the delivery is "+d.status.String())
	}

	d.trackingNumber = trackingNumber
	return nil
}

// EnsureDeletable checks the pre-dispatch correction rule: a delivery may be
// deleted only while it is still PendingShipment.
func (d *Delivery) EnsureDeletable() error {
	if d.status != PendingShipment {
		return errs.NewIllegalOperationError("delivery",
			"only a PendingShipment delivery can be deleted, current status is "+d.status.String())
	}
	return nil
}
