package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
)

// ProductRepository defines the read/write contract for the product catalog.
// Products are polymorphic: pizzas carry an ingredient list their price is
// derived from, drinks and desserts carry a stored price.
type ProductRepository interface {
	// Add persists a catalog product of any kind.
	Add(ctx context.Context, product catalog.Product) error

	// Get retrieves a product by its unique identifier, resolved to its
	// concrete variant so pricing works without further lookups.
	Get(ctx context.Context, id kernel.UUID) (catalog.Product, error)

	// GetAll retrieves the full catalog.
	GetAll(ctx context.Context) ([]catalog.Product, error)
}
