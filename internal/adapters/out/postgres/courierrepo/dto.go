// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// A null unavailable_until means the courier is free; availability is always
// derived from the timestamp, never stored as a boolean.
type CourierDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name             string     `gorm:"type:varchar(255);not null"`
	Area             string     `gorm:"type:varchar(32);not null;index"`
	UnavailableUntil *time.Time `gorm:"index"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:               courier.ID().Bytes(),
		Name:             courier.Name(),
		Area:             courier.Area().Code(),
		UnavailableUntil: courier.UnavailableUntil(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	area, err := kernel.NewDeliveryArea(dto.Area)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, area, dto.UnavailableUntil)
}
