package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out terminal orders so the kitchen only sees work it can act on.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for monitoring queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first so the kitchen
// works the queue in placement order.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	var rowsQuery *gorm.DB
	if statuses := query.Statuses(); len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, status := range statuses {
			statusStrings[i] = status.String()
		}
		rowsQuery = tx.Raw(`
			SELECT id, customer_id, status, created_at
			FROM orders
			WHERE status IN (?)
			ORDER BY created_at
		`, statusStrings)
	} else {
		rowsQuery = tx.Raw(`
			SELECT id, customer_id, status, created_at
			FROM orders
			WHERE status NOT IN (?, ?)
			ORDER BY created_at
		`, order.Delivered.String(), order.Cancelled.String())
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			idStr       string
			customerStr string
			statusStr   string
			createdAt   time.Time
		)
		if err = rows.Scan(&idStr, &customerStr, &statusStr, &createdAt); err != nil {
			return nil, err
		}

		resp, respErr := buildActiveOrderResponse(idStr, customerStr, statusStr, createdAt)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildActiveOrderResponse(
	idStr, customerStr, statusStr string,
	createdAt time.Time,
) (GetActiveOrdersQueryResponse, error) {
	id, err := kernel.UUIDFromString(idStr)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromString(customerStr)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	status, err := order.StatusFromString(statusStr)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	return GetActiveOrdersQueryResponse{
		ID:         id,
		CustomerID: customerID,
		Status:     status,
		CreatedAt:  createdAt,
	}, nil
}
