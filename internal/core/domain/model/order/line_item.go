package order

import (
	"errors"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrProductIsRequired is returned when creating a line item without a product.
	ErrProductIsRequired = errs.NewValueIsRequiredError("line item product")
	// ErrQuantityIsInvalid is returned when creating a line item with a non-positive quantity.
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// LineItem is a product reference with a positive quantity. Line items are
// exclusively owned by their order and carry a resolved product variant, so
// pricing never needs a runtime type lookup.
//
// LineItem is immutable after construction.
type LineItem struct {
	product  catalog.Product
	quantity int
}

// NewLineItem creates a LineItem with validation. The product must be a
// resolved catalog variant and the quantity positive.
func NewLineItem(product catalog.Product, quantity int) (LineItem, error) {
	if product == nil {
		return LineItem{}, ErrProductIsRequired
	}
	if err := product.Kind().Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, ErrQuantityIsInvalid
	}

	return LineItem{product: product, quantity: quantity}, nil
}

// Product returns the referenced catalog product.
func (li LineItem) Product() catalog.Product {
	return li.product
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// TotalPrice returns the product's unit price times the quantity.
// Pizzas derive their unit price from ingredient costs at call time.
func (li LineItem) TotalPrice() kernel.Money {
	return li.product.Price().MulInt(li.quantity)
}
