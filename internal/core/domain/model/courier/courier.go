package courier

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ReservationWindow is how long a courier stays reserved after taking an order.
const ReservationWindow = 30 * time.Minute

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsNotAvailable is returned when reserving a courier inside an active window.
	ErrCourierIsNotAvailable = errors.New("courier is not available")
)

// Courier represents a delivery courier assigned to exactly one delivery area.
// It is an aggregate root that manages courier identity and the time-based
// reservation window.
//
// Availability is derived from the unavailable-until timestamp: unset means
// available, a timestamp in the past means available again. Observing an
// expired window clears the stored timestamp (self-healing), so persistence
// converges to the derived state without an explicit reset call.
//
// Example usage:
//
//	area, _ := kernel.NewDeliveryArea("1012AB")
//	courier, err := NewCourier(kernel.NewUUID(), "Alice", area)
//	if err != nil {
//	    // Handle construction error
//	}
//	if courier.IsAvailable(time.Now()) {
//	    _ = courier.Reserve(time.Now())
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// area is the delivery area this courier serves
	area kernel.DeliveryArea
	// unavailableUntil is the end of the active reservation window (nil = available)
	unavailableUntil *time.Time
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates an available Courier with the specified parameters.
// This is the only way to create a valid, fresh Courier instance.
func NewCourier(id kernel.UUID, name string, area kernel.DeliveryArea) (*Courier, error) {
	return RestoreCourier(id, name, area, nil)
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its reservation window state.
func RestoreCourier(
	id kernel.UUID,
	name string,
	area kernel.DeliveryArea,
	unavailableUntil *time.Time,
) (*Courier, error) {
	courier := &Courier{
		unavailableUntil: unavailableUntil,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setArea(area),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Area returns the delivery area this courier serves.
func (c *Courier) Area() kernel.DeliveryArea {
	return c.area
}

// UnavailableUntil returns the end of the active reservation window,
// or nil when the courier is available.
func (c *Courier) UnavailableUntil() *time.Time {
	return c.unavailableUntil
}

// IsAvailable reports whether the courier can take an order at the given
// time. An expired reservation window is cleared as a side effect, so the
// stored state self-heals on read.
func (c *Courier) IsAvailable(now time.Time) bool {
	if c.unavailableUntil == nil {
		return true
	}
	if !now.Before(*c.unavailableUntil) {
		c.unavailableUntil = nil
		return true
	}
	return false
}

// Reserve marks the courier unavailable for the reservation window starting
// at now. Returns ErrCourierIsNotAvailable if a window is already active.
func (c *Courier) Reserve(now time.Time) error {
	if !c.IsAvailable(now) {
		return ErrCourierIsNotAvailable
	}
	until := now.Add(ReservationWindow)
	c.unavailableUntil = &until
	return nil
}

// Release clears the reservation window regardless of its expiry.
func (c *Courier) Release() {
	c.unavailableUntil = nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setArea(area kernel.DeliveryArea) error {
	if err := area.Validate(); err != nil {
		return err
	}
	c.area = area
	return nil
}
