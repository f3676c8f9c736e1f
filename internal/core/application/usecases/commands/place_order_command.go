package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
	ErrItemQuantityIsInvalid = errors.New("item quantity must be greater than 0")
)

// OrderItem is one requested cart position: a catalog product reference and
// a positive quantity. Product kinds are resolved by the handler against
// the catalog.
type OrderItem struct {
	productID kernel.UUID
	quantity  int
}

// NewOrderItem creates an order item with validation.
func NewOrderItem(productID kernel.UUID, quantity int) (OrderItem, error) {
	if err := productID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, ErrItemQuantityIsInvalid
	}

	return OrderItem{productID: productID, quantity: quantity}, nil
}

// ProductID returns the referenced catalog product's ID.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// PlaceOrderCommand represents a request to place a new order for a customer.
// Encapsulates the cart contents and an optional discount code.
//
// Example:
//
//	item, _ := NewOrderItem(margheritaID, 2)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, []OrderItem{item}, "SPRING20")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	items        []OrderItem
	discountCode string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both IDs are valid and at least one item is present.
// An empty discountCode means no code is attached.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []OrderItem,
	discountCode string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		discountCode: discountCode,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested cart positions.
func (c PlaceOrderCommand) Items() []OrderItem {
	return c.items
}

// DiscountCode returns the attached code string, empty if none.
func (c PlaceOrderCommand) DiscountCode() string {
	return c.discountCode
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if item.quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
