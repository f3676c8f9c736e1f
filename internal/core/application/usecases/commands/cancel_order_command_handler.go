package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the order to cancel does not exist.
// Distinct from a cancellation that arrives past the window.
var ErrOrderNotFound = errors.New("order not found")

// CancelOrderResult reports the outcome of a cancellation request.
type CancelOrderResult int

const (
	// OrderCancelled means the order was cancelled inside the window.
	OrderCancelled CancelOrderResult = iota

	// OrderStillPending means the cancellation window has closed (or the
	// order already left the Preparing status) and the order proceeds.
	OrderStillPending
)

// CancelOrderCommandHandler handles customer cancellation requests.
// A successful cancellation also releases the order's reserved courier so
// the courier can take new orders immediately.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404: no such order
//	case err != nil:
//	    // infrastructure failure
//	case result == OrderStillPending:
//	    // too late: the kitchen keeps the order
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory spanning order and courier repositories.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. The domain's Cancel is a
// silent no-op outside the window, so the handler inspects the status
// afterwards to tell the two outcomes apart.
func (h CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderStillPending, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderStillPending, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderStillPending, ErrOrderNotFound
	}
	if err != nil {
		return OrderStillPending, err
	}

	// An order belonging to another customer looks like no order at all,
	// so callers cannot tell foreign order ids apart from missing ones.
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return OrderStillPending, ErrOrderNotFound
	}

	o.Cancel(time.Now().UTC())
	if o.Status() != order.Cancelled {
		return OrderStillPending, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return OrderStillPending, err
	}

	if err = h.releaseCourier(ctx, uow, o); err != nil {
		return OrderStillPending, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderStillPending, err
	}

	return OrderCancelled, nil
}

// releaseCourier frees the order's reserved courier, if any.
func (h CancelOrderCommandHandler) releaseCourier(ctx context.Context, uow UoW, o *order.Order) error {
	if o.CourierID() == nil {
		return nil
	}

	courierRepo := uow.CourierRepository()

	assigned, err := courierRepo.Get(ctx, *o.CourierID())
	if err != nil {
		return err
	}

	assigned.Release()
	return courierRepo.Update(ctx, assigned)
}
