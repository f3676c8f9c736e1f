package courierrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "area", "unavailable_until").
		Updates(map[string]any{
			"name":              dto.Name,
			"area":              dto.Area,
			"unavailable_until": dto.UnavailableUntil,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInArea retrieves every courier assigned to the delivery area,
// sorted by ID for deterministic dispatch.
func (r *GormCourierRepository) GetAllInArea(
	ctx context.Context,
	area kernel.DeliveryArea,
) ([]*courier.Courier, error) {
	if err := area.Validate(); err != nil {
		return nil, err
	}

	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("area = ?", area.Code()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// Reserve persists the courier's reservation window with a conditional
// update. The row is only written while it is still free or its stored
// window already expired; a zero rows-affected result means a concurrent
// placement reserved the courier first.
func (r *GormCourierRepository) Reserve(
	ctx context.Context,
	aggregate *courier.Courier,
	now time.Time,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ? AND (unavailable_until IS NULL OR unavailable_until <= ?)", dto.ID, now).
		Update("unavailable_until", dto.UnavailableUntil)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return courier.ErrCourierIsNotAvailable
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ReleaseAllExpired clears every reservation window that has passed and
// returns the number of couriers released.
func (r *GormCourierRepository) ReleaseAllExpired(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("unavailable_until IS NOT NULL AND unavailable_until <= ?", now).
		Update("unavailable_until", nil)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
