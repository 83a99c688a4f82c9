package productrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pglock"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "unit_price", "stock").
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

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, pglock.Translate(err)
	}

	return toDomain(dto)
}

// GetForUpdate retrieves and row-locks the given products. The query orders
// by ID ascending, so two transactions touching overlapping product sets
// always acquire their locks in the same sequence and cannot deadlock each
// other. Returns ObjectNotFoundError naming the first missing product when
// any requested ID does not exist.
func (r *GormProductRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id").
		Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, pglock.Translate(err)
	}

	if len(dtos) != len(ids) {
		found := make(map[uuid.UUID]bool, len(dtos))
		for _, dto := range dtos {
			found[dto.ID] = true
		}
		for _, id := range ids {
			if !found[id.Bytes()] {
				return nil, errs.NewObjectNotFoundError("product", id.String())
			}
		}
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		products = append(products, p)
	}

	return products, nil
}
