package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/discount"
)

// DiscountCodeRepository defines the persistence contract for discount codes.
type DiscountCodeRepository interface {
	// Add persists a new discount code to storage.
	Add(ctx context.Context, code *discount.DiscountCode) error

	// GetByCode retrieves a discount code by its unique code string.
	GetByCode(ctx context.Context, code string) (*discount.DiscountCode, error)

	// Redeem persists the code's redeemed state with a conditional update:
	// the row is only written if it is still unredeemed at the time of the
	// write. When a concurrent placement redeemed it first,
	// discount.ErrCodeAlreadyRedeemed is returned and nothing is written.
	Redeem(ctx context.Context, code *discount.DiscountCode) error
}
