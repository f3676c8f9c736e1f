// Package http exposes the application's use cases over a REST API.
// It coordinates between HTTP handlers and application use cases,
// translating domain errors into status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerID   string                  `json:"customer_id"`
	Items        []PlaceOrderItemRequest `json:"items"`
	DiscountCode string                  `json:"discount_code,omitempty"`
}

// PlaceOrderItemRequest is one cart position of a placement request.
type PlaceOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderResponse confirms a placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel. The
// customer id identifies the caller; only the order's owner may cancel.
type CancelOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

// CancelOrderResponse reports whether the cancellation took effect.
type CancelOrderResponse struct {
	OrderID   string `json:"order_id"`
	Cancelled bool   `json:"cancelled"`
}

// AdvanceOrderResponse confirms a lifecycle transition.
type AdvanceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// OrderTotalResponse is the price breakdown of GET /api/v1/orders/:id/total.
type OrderTotalResponse struct {
	OrderID  string `json:"order_id"`
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

// OrderSummary is one row of GET /api/v1/orders.
type OrderSummary struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCourierRequest is the body of POST /api/v1/couriers.
type CreateCourierRequest struct {
	Name string `json:"name"`
	Area string `json:"area"`
}

// Server handles HTTP requests by delegating to command and query handlers.
type Server struct {
	placeOrderHandler    commands.PlaceOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	advanceOrderHandler  commands.AdvanceOrderCommandHandler
	createCourierHandler commands.CreateCourierCommandHandler

	getOrderTotalHandler   queries.GetOrderTotalQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	getOrderTotalHandler queries.GetOrderTotalQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		createCourierHandler:   createCourierHandler,
		getOrderTotalHandler:   getOrderTotalHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.GET("/orders/:id/total", s.GetOrderTotal)
	api.GET("/orders", s.GetOrders)
	api.POST("/couriers", s.CreateCourier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, idErr := kernel.UUIDFromString(itemReq.ProductID)
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		}

		item, itemErr := commands.NewOrderItem(productID, itemReq.Quantity)
		if itemErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, items, req.DiscountCode)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return placeOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// placeOrderError maps placement failures onto status codes. Business rule
// rejections are client errors; losing the courier race is a conflict the
// client may retry.
func placeOrderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrCustomerNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Customer not found")
	case errors.Is(err, commands.ErrProductNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Product not found")
	case errors.Is(err, order.ErrOrderMustContainPizza):
		return errorResponse(ctx, http.StatusUnprocessableEntity, "Order must contain at least one pizza")
	case errors.Is(err, commands.ErrDiscountCodeInvalid):
		return errorResponse(ctx, http.StatusUnprocessableEntity, "Discount code is invalid")
	case errors.Is(err, services.ErrNoCourierAvailable):
		return errorResponse(ctx, http.StatusConflict, "No courier available in the delivery area")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
	}
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
// A request past the cancellation window is not an error: the response
// reports that the order stays with the kitchen. Cancelling an order owned
// by another customer reports the order as not found.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrOrderNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to cancel order")
	}

	return ctx.JSON(http.StatusOK, CancelOrderResponse{
		OrderID:   orderID.String(),
		Cancelled: result == commands.OrderCancelled,
	})
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order to
// the next lifecycle status. Terminal orders cannot move further, which is
// reported as a conflict.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(err, errs.ErrValueIsInvalid):
			return errorResponse(ctx, http.StatusConflict, "Order cannot be advanced")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to advance order")
		}
	}

	return ctx.JSON(http.StatusOK, AdvanceOrderResponse{OrderID: orderID.String()})
}

// GetOrderTotal handles GET /api/v1/orders/:id/total.
func (s *Server) GetOrderTotal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderTotalQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	breakdown, err := s.getOrderTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to get order total")
	}

	return ctx.JSON(http.StatusOK, OrderTotalResponse{
		OrderID:  orderID.String(),
		Subtotal: breakdown.Subtotal.String(),
		Discount: breakdown.Discount.String(),
		Total:    breakdown.Total.String(),
	})
}

// GetOrders handles GET /api/v1/orders - retrieves in-flight orders.
// Optional repeated ?status= parameters narrow the result to a set of
// lifecycle states.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()
	if statusParams := ctx.QueryParams()["status"]; len(statusParams) > 0 {
		statuses := make([]order.Status, 0, len(statusParams))
		for _, statusParam := range statusParams {
			status, err := order.StatusFromString(statusParam)
			if err != nil {
				return errorResponse(ctx, http.StatusBadRequest, "Invalid status filter")
			}
			statuses = append(statuses, status)
		}

		var err error
		query, err = queries.NewGetActiveOrdersQueryWithStatuses(statuses)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid status filter")
		}
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			OrderID:    o.ID.String(),
			CustomerID: o.CustomerID.String(),
			Status:     o.Status.String(),
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	area, err := kernel.NewDeliveryArea(req.Area)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid delivery area")
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, area)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid courier data: "+err.Error())
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusConflict, "Failed to create courier")
	}

	return ctx.NoContent(http.StatusCreated)
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
