package catalog

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Kind discriminates the product variants that can appear on an order line.
// It is persisted alongside the product reference so line items can be
// reconstructed without reflection.
type Kind int

const (
	// KindUnknown represents an invalid or undefined product kind.
	KindUnknown Kind = iota

	// KindPizza marks a pizza whose price is derived from its ingredients.
	KindPizza

	// KindDrink marks a drink with a stored fixed price.
	KindDrink

	// KindDessert marks a dessert with a stored fixed price.
	KindDessert
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindPizza:   "Pizza",
		KindDrink:   "Drink",
		KindDessert: "Dessert",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindPizza:   "Pizza",
		KindDrink:   "Drink",
		KindDessert: "Dessert",
	}
}

// Validate checks if the Kind value is one of the defined product variants.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidError("product kind")
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Product is the capability shared by every orderable item. A product either
// stores a fixed price or derives one; Price resolves that at the concrete
// type rather than through a runtime lookup.
type Product interface {
	// ID returns the product's unique identifier.
	ID() kernel.UUID

	// Name returns the product's display name.
	Name() string

	// Kind returns the variant discriminator for this product.
	Kind() Kind

	// Price returns the current sale price. For pizzas this is derived from
	// ingredient costs at call time; drinks and desserts return their stored
	// price unchanged.
	Price() kernel.Money
}
