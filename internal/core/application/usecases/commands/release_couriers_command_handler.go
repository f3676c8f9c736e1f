package commands

import (
	"context"
	"time"
)

// ReleaseCouriersCommandHandler clears expired courier reservation windows
// in one batch update.
//
// Example:
//
//	handler := NewReleaseCouriersCommandHandler(uowFactory)
//	cmd := NewReleaseCouriersCommand()
//
//	released, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("courier release sweep failed: %w", err)
//	}
//	log.Printf("released %d couriers", released)
type ReleaseCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewReleaseCouriersCommandHandler creates a handler for the release sweep.
// Requires a CourierUoWFactory for transactional persistence operations.
func NewReleaseCouriersCommandHandler(uowFactory CourierUoWFactory) ReleaseCouriersCommandHandler {
	return ReleaseCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command and returns the number of couriers
// whose windows were cleared.
func (h *ReleaseCouriersCommandHandler) Handle(ctx context.Context, cmd ReleaseCouriersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	released, err := uow.CourierRepository().ReleaseAllExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
