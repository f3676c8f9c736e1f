package discountrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// GormDiscountCodeRepository implements DiscountCodeRepository using GORM.
type GormDiscountCodeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDiscountCodeRepository creates a new GORM discount code repository.
func NewGormDiscountCodeRepository(db *gorm.DB, tracker aggregateTracker) *GormDiscountCodeRepository {
	return &GormDiscountCodeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new discount code to the database.
func (r *GormDiscountCodeRepository) Add(ctx context.Context, aggregate *discount.DiscountCode) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCode retrieves a discount code by its textual code.
func (r *GormDiscountCodeRepository) GetByCode(
	ctx context.Context,
	code string,
) (*discount.DiscountCode, error) {
	var dto DiscountCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Redeem persists the single-use consumption of a discount code with a
// conditional update. A zero rows-affected result means a concurrent
// placement redeemed the code first.
func (r *GormDiscountCodeRepository) Redeem(
	ctx context.Context,
	aggregate *discount.DiscountCode,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DiscountCodeDTO{}).
		Where("id = ? AND redeemed = ?", dto.ID, false).
		Update("redeemed", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return discount.ErrCodeAlreadyRedeemed
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
