package services

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// ErrNoCourierAvailable is returned when no courier can take the order.
// This occurs when either no couriers serve the delivery area or every
// courier in the area is inside an active reservation window.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierDispatcher is a domain service responsible for finding and reserving
// a courier for an order within the customer's delivery area.
//
// Business rules:
//   - Only couriers assigned to the order's delivery area are considered
//   - A courier is eligible iff it is available at dispatch time;
//     availability checks self-heal expired reservation windows
//   - Selection is deterministic: the available courier with the lowest
//     ID is chosen, so concurrent dispatches contend for the same row
//     and the persistence layer arbitrates
//   - Reserving the courier and recording it on the order happen together
//
// Example usage:
//
//	dispatcher := services.NewCourierDispatcher()
//	assigned, err := dispatcher.Dispatch(order, couriers, area, time.Now())
//	if errors.Is(err, services.ErrNoCourierAvailable) {
//	    // Reject the placement: nobody can deliver right now
//	    return
//	}
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch selects an available courier for the order's delivery area,
// reserves it for the standard reservation window starting at now, and
// records the assignment on the order.
//
// The couriers slice is expected to be pre-filtered to the order's area by
// the caller (the repository queries by area); couriers from other areas
// are skipped here as well so the rule holds regardless of the data source.
//
// Returns ErrNoCourierAvailable when no eligible courier exists.
func (d CourierDispatcher) Dispatch(
	o *order.Order,
	couriers []*courier.Courier,
	area kernel.DeliveryArea,
	now time.Time,
) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	selected, err := d.selectCourier(couriers, area, now)
	if err != nil {
		return nil, err
	}

	if err = selected.Reserve(now); err != nil {
		return nil, err
	}

	if err = o.AssignCourier(selected.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

// selectCourier picks the available courier with the lowest ID in the area.
func (d CourierDispatcher) selectCourier(
	couriers []*courier.Courier,
	area kernel.DeliveryArea,
	now time.Time,
) (*courier.Courier, error) {
	var selected *courier.Courier

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.Area().IsEqual(area) {
			continue
		}
		if !c.IsAvailable(now) {
			continue
		}
		if selected == nil || c.ID().String() < selected.ID().String() {
			selected = c
		}
	}

	if selected == nil {
		return nil, ErrNoCourierAvailable
	}

	return selected, nil
}
