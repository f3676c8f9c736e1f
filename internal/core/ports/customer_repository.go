package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// The loyalty counter and birthday reward flag stored here are only ever
// changed through order placement.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, customer *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
