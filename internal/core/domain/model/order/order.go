package order

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// CancellationWindow is how long after creation an order may still be
// cancelled by the customer.
const CancellationWindow = 5 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through a constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderMustContainPizza is returned by the placement admission check when
	// an order holds only drinks and desserts.
	ErrOrderMustContainPizza = errors.New("order must contain at least one pizza")
	// ErrCreatedAtIsRequired is returned when creating an order with a zero timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("order creation time")
)

// Order represents a customer order in the system. It is the aggregate root
// that owns its line items and governs the lifecycle from placement through
// delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer, and creation time
//   - The discount applied is non-negative and never exceeds the subtotal
//   - Status transitions follow the Status state machine; the cancellation
//     window additionally bounds Preparing -> Cancelled in time
//   - The subtotal is derived from line items at call time, never cached
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// createdAt anchors the cancellation window
	createdAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items are the purchased products; the order owns them exclusively
	items []LineItem

	// discountApplied is the total discount on this order (defaults to zero)
	discountApplied kernel.Money

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// discountCodeID is the redeemed code's ID (nil if none)
	discountCodeID *kernel.UUID

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Preparing status with a zero discount.
// Line items are validated individually; the at-least-one-pizza admission
// check is a separate step (ValidateForPlacement) run before any courier or
// discount processing.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	createdAt time.Time,
	items []LineItem,
) (*Order, error) {
	return RestoreOrder(id, customerID, createdAt, Preparing, items, kernel.ZeroMoney(), nil, nil)
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	createdAt time.Time,
	status Status,
	items []LineItem,
	discountApplied kernel.Money,
	courierID *kernel.UUID,
	discountCodeID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
		o.setStatus(status),
		o.setItems(items),
		o.setDiscountApplied(discountApplied),
		o.setCourierID(courierID),
		o.setDiscountCodeID(discountCodeID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items.
func (o *Order) Items() []LineItem {
	return o.items
}

// DiscountApplied returns the discount recorded on this order.
func (o *Order) DiscountApplied() kernel.Money {
	return o.discountApplied
}

// CourierID returns the assigned courier's ID, or nil if unassigned.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// DiscountCodeID returns the redeemed code's ID, or nil if none was used.
func (o *Order) DiscountCodeID() *kernel.UUID {
	return o.discountCodeID
}

// Subtotal sums each line item's unit price times quantity,
// before any discount.
func (o *Order) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	return subtotal
}

// Total returns the payable amount: subtotal minus the applied discount,
// clamped at zero. The clamp should never trigger given the discount rules,
// but a negative total must not be possible.
func (o *Order) Total() kernel.Money {
	total := o.Subtotal().Sub(o.discountApplied)
	if total.IsNegative() {
		return kernel.ZeroMoney()
	}
	return total
}

// PizzaCount returns the total pizza quantity across all line items.
func (o *Order) PizzaCount() int {
	count := 0
	for _, item := range o.items {
		if item.Product().Kind() == catalog.KindPizza {
			count += item.Quantity()
		}
	}
	return count
}

// ValidateForPlacement is the admission check run before persistence,
// courier assignment, or discount processing: an order must contain at
// least one pizza. An order with only drinks and desserts is invalid.
func (o *Order) ValidateForPlacement() error {
	if o.PizzaCount() == 0 {
		return ErrOrderMustContainPizza
	}
	return nil
}

// CanCancel reports whether the order is still inside the cancellation
// window at the given time. The window is strict: exactly five minutes
// after creation is already too late.
func (o *Order) CanCancel(now time.Time) bool {
	return now.Sub(o.createdAt) < CancellationWindow
}

// Cancel sets the status to Cancelled if the order is still Preparing and
// inside the cancellation window. Outside the window (or from any other
// status) it is a silent no-op: callers inspect Status afterwards to learn
// whether the cancellation took effect.
func (o *Order) Cancel(now time.Time) {
	if !o.CanCancel(now) {
		return
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return
	}
	o.status = newStatus
}

// Advance moves the order one step along the delivery workflow.
// Returns an error on terminal statuses.
func (o *Order) Advance() error {
	newStatus, err := o.status.Advance()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AssignCourier records the reserved courier on the order.
// Assignment is only meaningful while the order is being prepared.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidError("order status")
	}

	o.courierID = &courierID
	return nil
}

// ApplyDiscount records the computed discount and the redeemed code (if
// any) on the order. The amount must be non-negative and is clamped to the
// subtotal so the total can never go below zero.
func (o *Order) ApplyDiscount(amount kernel.Money, codeID *kernel.UUID) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("discount amount")
	}

	if subtotal := o.Subtotal(); amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	o.discountApplied = amount
	o.discountCodeID = codeID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for _, item := range items {
		if item.Product() == nil {
			return ErrProductIsRequired
		}
	}
	o.items = items
	return nil
}

func (o *Order) setDiscountApplied(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("discount amount")
	}
	o.discountApplied = amount
	return nil
}

func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	o.courierID = courierID
	return nil
}

func (o *Order) setDiscountCodeID(codeID *kernel.UUID) error {
	if codeID != nil {
		if err := codeID.Validate(); err != nil {
			return err
		}
	}
	o.discountCodeID = codeID
	return nil
}
