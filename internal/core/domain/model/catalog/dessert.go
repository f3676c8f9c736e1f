package catalog

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrDessertNameIsRequired is returned when creating a dessert without a name.
	ErrDessertNameIsRequired = errs.NewValueIsRequiredError("dessert name")
)

// Dessert is a product with a stored fixed price and explicit dietary flags.
type Dessert struct {
	id           kernel.UUID
	name         string
	price        kernel.Money
	isVegan      bool
	isVegetarian bool
}

// NewDessert creates a Dessert with validation.
func NewDessert(
	id kernel.UUID,
	name string,
	price kernel.Money,
	isVegan bool,
	isVegetarian bool,
) (*Dessert, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrDessertNameIsRequired
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("dessert price")
	}

	return &Dessert{
		id:           id,
		name:         name,
		price:        price,
		isVegan:      isVegan,
		isVegetarian: isVegetarian,
	}, nil
}

// ID returns the dessert's unique identifier.
func (d *Dessert) ID() kernel.UUID {
	return d.id
}

// Name returns the dessert's display name.
func (d *Dessert) Name() string {
	return d.name
}

// Kind returns KindDessert.
func (d *Dessert) Kind() Kind {
	return KindDessert
}

// Price returns the stored fixed price unchanged.
func (d *Dessert) Price() kernel.Money {
	return d.price
}

// IsVegan reports whether the dessert is vegan.
func (d *Dessert) IsVegan() bool {
	return d.isVegan
}

// IsVegetarian reports whether the dessert is vegetarian.
func (d *Dessert) IsVegetarian() bool {
	return d.isVegetarian
}
