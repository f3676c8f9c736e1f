package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

var (
	// ErrCustomerNotFound is returned when the ordering customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound is returned when a cart position references an unknown product.
	ErrProductNotFound = errors.New("product not found")
	// ErrDiscountCodeInvalid is returned for an unknown, already redeemed, or
	// wrong-owner code. Recoverable: the caller may retry without a code.
	ErrDiscountCodeInvalid = errors.New("discount code is invalid")
)

// PlaceOrderCommandHandler orchestrates the full order placement transaction:
// catalog resolution, the pizza admission rule, courier assignment, discount
// stacking, and persistence.
//
// The sequence is strict. Validation and courier assignment both succeed
// before any customer state, code redemption, or loyalty counter is touched,
// and the whole placement runs inside one unit of work: a failure at any
// step leaves no partial order, no reserved courier, and no consumed code.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderMustContainPizza):
//	    // Cart had only drinks and desserts
//	case errors.Is(err, services.ErrNoCourierAvailable):
//	    // Nobody can deliver in the customer's area right now
//	case errors.Is(err, ErrDiscountCodeInvalid):
//	    // Retry without the code or re-prompt
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	dispatcher services.CourierDispatcher
	calculator services.DiscountCalculator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory spanning every repository placement touches.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewCourierDispatcher(),
		calculator: services.NewDiscountCalculator(),
	}
}

// Handle processes the order placement command.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return errors.Join(ErrCustomerNotFound, err)
	}

	newOrder, err := h.buildOrder(ctx, uow, cmd, now)
	if err != nil {
		return err
	}

	if err = newOrder.ValidateForPlacement(); err != nil {
		return err
	}

	code, err := h.resolveDiscountCode(ctx, uow, cmd)
	if err != nil {
		return err
	}

	if _, err = h.assignCourier(ctx, uow, newOrder, cust.Area(), now); err != nil {
		return err
	}

	if _, err = h.calculator.Apply(newOrder, cust, code, now); err != nil {
		return err
	}

	if code != nil {
		if err = uow.DiscountCodeRepository().Redeem(ctx, code); err != nil {
			if errors.Is(err, discount.ErrCodeAlreadyRedeemed) {
				return ErrDiscountCodeInvalid
			}
			return err
		}
	}

	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildOrder resolves the cart positions against the catalog and constructs
// the order aggregate.
func (h PlaceOrderCommandHandler) buildOrder(
	ctx context.Context,
	uow PlacementUoW,
	cmd PlaceOrderCommand,
	now time.Time,
) (*order.Order, error) {
	productRepo := uow.ProductRepository()

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		product, err := productRepo.Get(ctx, requested.ProductID())
		if err != nil {
			return nil, errors.Join(ErrProductNotFound, err)
		}

		item, err := order.NewLineItem(product, requested.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(cmd.OrderID(), cmd.CustomerID(), now, items)
}

// resolveDiscountCode loads and validates the attached code, if any.
// Unknown, redeemed, and wrong-owner codes all map to ErrDiscountCodeInvalid
// so the boundary reports one recoverable reason.
func (h PlaceOrderCommandHandler) resolveDiscountCode(
	ctx context.Context,
	uow PlacementUoW,
	cmd PlaceOrderCommand,
) (*discount.DiscountCode, error) {
	if cmd.DiscountCode() == "" {
		return nil, nil //nolint:nilnil //no code attached
	}

	code, err := uow.DiscountCodeRepository().GetByCode(ctx, cmd.DiscountCode())
	if err != nil {
		return nil, ErrDiscountCodeInvalid
	}
	if !code.IsUsableBy(cmd.CustomerID()) {
		return nil, ErrDiscountCodeInvalid
	}

	return code, nil
}

// assignCourier dispatches a courier from the customer's area and persists
// the reservation conditionally. Losing the reservation race to a concurrent
// placement reads the same as an empty pool.
func (h PlaceOrderCommandHandler) assignCourier(
	ctx context.Context,
	uow PlacementUoW,
	o *order.Order,
	area kernel.DeliveryArea,
	now time.Time,
) (*courier.Courier, error) {
	courierRepo := uow.CourierRepository()

	couriers, err := courierRepo.GetAllInArea(ctx, area)
	if err != nil {
		return nil, err
	}

	assigned, err := h.dispatcher.Dispatch(o, couriers, area, now)
	if err != nil {
		return nil, err
	}

	if err = courierRepo.Reserve(ctx, assigned, now); err != nil {
		if errors.Is(err, courier.ErrCourierIsNotAvailable) {
			return nil, services.ErrNoCourierAvailable
		}
		return nil, err
	}

	return assigned, nil
}
