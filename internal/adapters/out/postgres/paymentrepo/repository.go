package paymentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pglock"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
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

// Update saves an existing payment to the database. Only the verification
// outcome is mutable; the proof, method, and amount are fixed at submission.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "reject_reason").
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

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a payment by ID, taking a row lock so verification
// and rejection serialize against concurrent writers.
func (r *GormPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	return r.get(ctx, id, true)
}

func (r *GormPaymentRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto PaymentDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, pglock.Translate(err)
	}

	return toDomain(dto)
}

// GetActiveByOrderID retrieves the order's non-rejected payment. Rejected
// payments stay on record but do not block a resubmission, so they are
// excluded here. Returns ObjectNotFoundError when the order has no active
// payment.
func (r *GormPaymentRepository) GetActiveByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status != ?", orderID.Bytes(), int(payment.Rejected)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active payment for order", orderID.String())
		}
		return nil, pglock.Translate(err)
	}

	return toDomain(dto)
}
