package catalog

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrDrinkNameIsRequired is returned when creating a drink without a name.
	ErrDrinkNameIsRequired = errs.NewValueIsRequiredError("drink name")
)

// Drink is a product with a stored fixed price.
type Drink struct {
	id    kernel.UUID
	name  string
	price kernel.Money
}

// NewDrink creates a Drink with validation.
func NewDrink(id kernel.UUID, name string, price kernel.Money) (*Drink, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrDrinkNameIsRequired
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("drink price")
	}

	return &Drink{id: id, name: name, price: price}, nil
}

// ID returns the drink's unique identifier.
func (d *Drink) ID() kernel.UUID {
	return d.id
}

// Name returns the drink's display name.
func (d *Drink) Name() string {
	return d.name
}

// Kind returns KindDrink.
func (d *Drink) Kind() Kind {
	return KindDrink
}

// Price returns the stored fixed price unchanged.
func (d *Drink) Price() kernel.Money {
	return d.price
}
