// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Every unit of work runs as one serializable PostgreSQL transaction with a
// bounded lock_timeout. A transaction that loses a concurrency race, by
// lock timeout, serialization failure, or deadlock, surfaces a retryable
// ContentionError instead of blocking or corrupting state.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"database/sql"

	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/discountrepo"
	"fulfillment/internal/adapters/out/postgres/eventrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/adapters/out/postgres/pglock"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// lockTimeout bounds how long a transaction waits for a row lock before
// failing with a retryable error. Short enough that a stuck writer cannot
// stall every request behind it.
const lockTimeout = "3s"

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracking enables post-commit processing without re-reading the database.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// The factory ensures each business operation gets a fresh unit of work
// instance with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repository accessors return repositories
// bound to the active transaction, so every read, lock, and write of one
// business operation shares the same serializable transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a serializable database transaction with the bounded lock
// timeout applied. Multiple calls to Begin on the same instance are safe and
// will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Exec("SET LOCAL lock_timeout = '" + lockTimeout + "'").Error; err != nil {
		tx.Rollback()
		return err
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// A serialization failure detected at commit time surfaces as a retryable
// ContentionError. After commit, the transaction is closed and cannot be
// reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pglock.Translate(err)
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the base connection when no
// transaction has been started.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an OrderRepository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ProductRepository returns a ProductRepository bound to the current transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// PaymentRepository returns a PaymentRepository bound to the current transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// DiscountRepository returns a DiscountRepository bound to the current transaction.
func (uow *GormUnitOfWork) DiscountRepository() ports.DiscountRepository {
	return discountrepo.NewGormDiscountRepository(uow.conn())
}

// EventRepository returns an EventRepository bound to the current transaction.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this when aggregates are added or
// updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
