package catalog

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPizzaNameIsRequired is returned when creating a pizza without a name.
	ErrPizzaNameIsRequired = errs.NewValueIsRequiredError("pizza name")
)

// Pricing parameters for derived pizza prices.
var (
	// profitMargin is applied to the summed ingredient cost.
	profitMargin = decimal.NewFromFloat(0.40)
	// taxRate is applied to the price before tax.
	taxRate = decimal.NewFromFloat(0.09)
)

// Pizza is a product whose sale price is derived from its ingredient costs
// rather than stored. The ingredient list is ordered but order is not
// significant; duplicates are permitted.
//
// Pizza follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Vegan/vegetarian status is the logical AND over all ingredients;
//     a pizza with zero ingredients is vacuously vegan and vegetarian
//   - Price is recomputed from ingredient costs on every call, never cached
type Pizza struct {
	id          kernel.UUID
	name        string
	ingredients []Ingredient
}

// NewPizza creates a Pizza with validation. An empty ingredient list is
// allowed and prices at exactly 0.00.
func NewPizza(id kernel.UUID, name string, ingredients []Ingredient) (*Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrPizzaNameIsRequired
	}
	for _, ingredient := range ingredients {
		if err := ingredient.Validate(); err != nil {
			return nil, err
		}
	}

	return &Pizza{
		id:          id,
		name:        name,
		ingredients: ingredients,
	}, nil
}

// Validate ensures the pizza was created through NewPizza.
func (p *Pizza) Validate() error {
	if p == nil {
		return errs.NewValueIsRequiredError("pizza")
	}
	errSet := []error{p.id.Validate()}
	if p.name == "" {
		errSet = append(errSet, ErrPizzaNameIsRequired)
	}
	return errors.Join(errSet...)
}

// ID returns the pizza's unique identifier.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the pizza's display name.
func (p *Pizza) Name() string {
	return p.name
}

// Kind returns KindPizza.
func (p *Pizza) Kind() Kind {
	return KindPizza
}

// Ingredients returns the pizza's ingredient list.
func (p *Pizza) Ingredients() []Ingredient {
	return p.ingredients
}

// Price derives the pizza's sale price from its ingredient costs:
// a 40% profit margin on the summed cost, then 9% tax on the price before
// tax. The margin and the tax are each rounded half-up to cents before they
// are summed in; computing with unrounded intermediates yields a different
// final cent value.
//
// A pizza with no ingredients prices at exactly 0.00.
func (p *Pizza) Price() kernel.Money {
	cost := kernel.ZeroMoney()
	for _, ingredient := range p.ingredients {
		cost = cost.Add(ingredient.Cost())
	}

	margin := cost.Mul(profitMargin)
	priceBeforeTax := cost.Add(margin)
	tax := priceBeforeTax.Mul(taxRate)
	return priceBeforeTax.Add(tax)
}

// IsVegan reports whether every ingredient is vegan.
// True for a pizza with no ingredients.
func (p *Pizza) IsVegan() bool {
	for _, ingredient := range p.ingredients {
		if !ingredient.IsVegan() {
			return false
		}
	}
	return true
}

// IsVegetarian reports whether every ingredient is vegetarian.
// True for a pizza with no ingredients.
func (p *Pizza) IsVegetarian() bool {
	for _, ingredient := range p.ingredients {
		if !ingredient.IsVegetarian() {
			return false
		}
	}
	return true
}
