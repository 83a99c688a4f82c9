package deliveryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pglock"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pglock.Translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database. The destination address
// and order linkage are fixed at creation.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "tracking_number", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return pglock.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a delivery row. The aggregate enforces that only a
// PendingShipment delivery reaches this point.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pglock.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}

	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a delivery by ID, taking a row lock so status
// updates and deletes serialize against concurrent writers.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, id, true)
}

func (r *GormDeliveryRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DeliveryDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, pglock.Translate(err)
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the delivery attached to an order. Returns
// ObjectNotFoundError when the order has no delivery yet.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery for order", orderID.String())
		}
		return nil, pglock.Translate(err)
	}

	return toDomain(dto)
}
