package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// AdvanceOrderCommandHandler moves an order along the delivery workflow.
// When the order reaches Delivered, the assigned courier is released so the
// reservation window does not outlive the delivery.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for status progression.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command. Advancing a terminal order fails
// with the state machine's own error.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = o.Advance(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.Status() == order.Delivered {
		if err = h.releaseCourier(ctx, uow, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h AdvanceOrderCommandHandler) releaseCourier(ctx context.Context, uow UoW, o *order.Order) error {
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
