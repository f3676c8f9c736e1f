// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read directly from the database, bypassing the domain model.
package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrderTotalQueryIsNotConstructed = errors.New(
		"GetOrderTotalQuery must be created via NewGetOrderTotalQuery constructor",
	)
)

// GetOrderTotalQuery retrieves the payable total for a single order.
//
// Example:
//
//	query, _ := NewGetOrderTotalQuery(orderID)
//	handler := NewGetOrderTotalQueryHandler(db)
//
//	total, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order total: %w", err)
//	}
//	fmt.Printf("To pay: %s\n", total.Total)
type GetOrderTotalQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTotalQuery creates a query for an order's total.
func NewGetOrderTotalQuery(orderID kernel.UUID) (GetOrderTotalQuery, error) {
	query := GetOrderTotalQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderTotalQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTotalQueryIsNotConstructed if validation fails.
func (q GetOrderTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalQueryIsNotConstructed)
}

// OrderID returns the order to total.
func (q GetOrderTotalQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderTotalQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderTotalQueryResponse is the price breakdown of one order.
// Total is always Subtotal minus Discount, clamped at zero.
type GetOrderTotalQueryResponse struct {
	Subtotal kernel.Money
	Discount kernel.Money
	Total    kernel.Money
}
