package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// GetOrderTotalQueryHandler computes an order's price breakdown straight
// from the database. Line items carry the unit price observed at placement
// time, so the read never touches the catalog. Summing happens in fixed-point
// arithmetic on the scanned values, not in SQL, to keep cent-exactness
// independent of the database's numeric affinity.
type GetOrderTotalQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTotalQueryHandler creates a handler for order total queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTotalQueryHandler(db *gorm.DB) GetOrderTotalQueryHandler {
	return GetOrderTotalQueryHandler{db: db}
}

// Handle executes the query. Returns an error wrapping errs.ErrObjectNotFound
// when the order does not exist.
func (h GetOrderTotalQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalQuery,
) (GetOrderTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	var discountStr string
	err := h.db.WithContext(ctx).Raw(`
		SELECT discount_amount
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row().Scan(&discountStr)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderTotalQueryResponse{},
			errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	discountDec, err := decimal.NewFromString(discountStr)
	if err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	subtotal, err := h.sumLineItems(ctx, query)
	if err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	discount := kernel.NewMoney(discountDec)
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = kernel.ZeroMoney()
	}

	return GetOrderTotalQueryResponse{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}, nil
}

func (h GetOrderTotalQueryHandler) sumLineItems(
	ctx context.Context,
	query GetOrderTotalQuery,
) (kernel.Money, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT unit_price, quantity
		FROM line_items
		WHERE order_id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return kernel.Money{}, err
	}
	defer rows.Close()

	subtotal := kernel.ZeroMoney()
	for rows.Next() {
		var (
			unitPriceStr string
			quantity     int
		)
		if err = rows.Scan(&unitPriceStr, &quantity); err != nil {
			return kernel.Money{}, err
		}

		unitPrice, priceErr := kernel.MoneyFromString(unitPriceStr)
		if priceErr != nil {
			return kernel.Money{}, priceErr
		}
		subtotal = subtotal.Add(unitPrice.MulInt(quantity))
	}

	if err = rows.Err(); err != nil {
		return kernel.Money{}, err
	}

	return subtotal, nil
}
