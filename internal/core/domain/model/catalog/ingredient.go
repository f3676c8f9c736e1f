package catalog

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrIngredientNameIsRequired is returned when creating an ingredient without a name.
	ErrIngredientNameIsRequired = errs.NewValueIsRequiredError("ingredient name")
)

// Ingredient is a priced component of a pizza. Once a pizza referencing the
// ingredient is priced for an order, the cost observed at that moment is what
// enters the order's subtotal; the catalog never back-dates prices.
//
// Ingredient is immutable after construction.
type Ingredient struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	name         string
	cost         kernel.Money
	isVegan      bool
	isVegetarian bool
}

// NewIngredient creates an Ingredient with validation.
// The cost is a unit cost in fixed-point currency with two decimal places.
func NewIngredient(
	id kernel.UUID,
	name string,
	cost kernel.Money,
	isVegan bool,
	isVegetarian bool,
) (Ingredient, error) {
	ingredient := Ingredient{
		isVegan:      isVegan,
		isVegetarian: isVegetarian,
	}

	if err := errors.Join(
		ingredient.setID(id),
		ingredient.setName(name),
		ingredient.setCost(cost),
	); err != nil {
		return Ingredient{}, err
	}

	return ingredient, nil
}

// Validate ensures the ingredient was created through NewIngredient.
func (i Ingredient) Validate() error {
	return errors.Join(
		i.id.Validate(),
		i.cost.Validate(),
	)
}

// ID returns the ingredient's unique identifier.
func (i Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the ingredient's display name.
func (i Ingredient) Name() string {
	return i.name
}

// Cost returns the ingredient's unit cost.
func (i Ingredient) Cost() kernel.Money {
	return i.cost
}

// IsVegan reports whether the ingredient is vegan.
func (i Ingredient) IsVegan() bool {
	return i.isVegan
}

// IsVegetarian reports whether the ingredient is vegetarian.
func (i Ingredient) IsVegetarian() bool {
	return i.isVegetarian
}

func (i *Ingredient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Ingredient) setName(name string) error {
	if name == "" {
		return ErrIngredientNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Ingredient) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("ingredient cost")
	}
	i.cost = cost
	return nil
}
