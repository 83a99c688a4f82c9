package discountrepo

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/pglock"
	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDiscountRepository implements DiscountRepository using GORM.
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewGormDiscountRepository creates a new GORM discount repository.
func NewGormDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// GetActiveForProducts retrieves the discounts whose window covers the given
// instant, keyed by product ID. The window start is inclusive and the end
// exclusive. When a product somehow has overlapping windows, the most
// recently started one wins.
func (r *GormDiscountRepository) GetActiveForProducts(
	ctx context.Context,
	productIDs []kernel.UUID,
	at time.Time,
) (map[kernel.UUID]*discount.Discount, error) {
	if len(productIDs) == 0 {
		return map[kernel.UUID]*discount.Discount{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []DiscountDTO
	err := r.db.WithContext(ctx).
		Where("product_id IN ? AND starts_at <= ? AND ends_at > ?", rawIDs, at, at).
		Order("starts_at").
		Find(&dtos).Error
	if err != nil {
		return nil, pglock.Translate(err)
	}

	active := make(map[kernel.UUID]*discount.Discount, len(dtos))
	for _, dto := range dtos {
		d, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		active[d.ProductID()] = d
	}

	return active, nil
}
