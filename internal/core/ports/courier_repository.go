package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllInArea retrieves every courier assigned to the delivery area,
	// regardless of availability. Availability is decided in the domain so
	// expired reservation windows self-heal on read.
	GetAllInArea(ctx context.Context, area kernel.DeliveryArea) ([]*courier.Courier, error)

	// Reserve persists the courier's reservation window with a conditional
	// update: the row is only written if it is still free (or its stored
	// window has expired) at the time of the write. When a concurrent
	// placement won the race, courier.ErrCourierIsNotAvailable is returned
	// and nothing is written.
	Reserve(ctx context.Context, courier *courier.Courier, now time.Time) error

	// ReleaseAllExpired clears every reservation window that has passed,
	// returning the number of couriers released. Availability reads
	// self-heal one row at a time; this sweep keeps the stored state tidy
	// for couriers nobody queries.
	ReleaseAllExpired(ctx context.Context, now time.Time) (int, error)
}
