package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves orders for the kitchen monitoring view.
// By default terminal orders (Delivered, Cancelled) are excluded; an
// optional status filter narrows the result to a set of lifecycle states.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetActiveOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for all non-terminal orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetActiveOrdersQueryWithStatuses creates a query filtered to the given
// statuses. At least one status is required.
func NewGetActiveOrdersQueryWithStatuses(statuses []order.Status) (GetActiveOrdersQuery, error) {
	if len(statuses) == 0 {
		return GetActiveOrdersQuery{}, errs.NewValueIsRequiredError("statuses")
	}

	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
	}

	return GetActiveOrdersQuery{
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Statuses returns the filter, empty when every non-terminal status is wanted.
func (q GetActiveOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// GetActiveOrdersQueryResponse is one row of the monitoring view.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     order.Status
	CreatedAt  time.Time
}
