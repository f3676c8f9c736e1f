// Package customer provides the Customer aggregate: identity, birthdate,
// delivery area, and the loyalty/birthday reward state that the discount
// engine reads and mutates during order placement.
//
// Key business rules:
//   - The lifetime pizza counter and the birthday reward flag are mutated
//     only through the domain methods invoked by the discount engine as a
//     side effect of order placement, never directly by boundary code
//   - The loyalty discount unlocks at 10 lifetime pizzas and redeeming it
//     resets the counter to zero
//   - The birthday reward is matched on month and day and redeemed at most
//     once per cycle
package customer

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// LoyaltyThreshold is the lifetime pizza count at which the loyalty
// discount becomes available.
const LoyaltyThreshold = 10

var (
	// ErrCustomerNameIsRequired is returned when creating a customer without a name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrBirthdateIsRequired is returned when creating a customer with a zero birthdate.
	ErrBirthdateIsRequired = errs.NewValueIsRequiredError("customer birthdate")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is a long-lived aggregate identified by the account directory.
// It carries the state the discount engine needs: birthdate, the lifetime
// pizza counter, and whether this cycle's birthday reward was redeemed.
type Customer struct {
	id                     kernel.UUID
	name                   string
	birthdate              time.Time
	area                   kernel.DeliveryArea
	totalPizzasOrdered     int
	birthdayRewardRedeemed bool

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with validation. The counter starts at zero
// and the birthday reward is unredeemed.
func NewCustomer(
	id kernel.UUID,
	name string,
	birthdate time.Time,
	area kernel.DeliveryArea,
) (*Customer, error) {
	return RestoreCustomer(id, name, birthdate, area, 0, false)
}

// RestoreCustomer reconstructs a Customer from persistent storage, including
// its loyalty counter and birthday reward state.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	birthdate time.Time,
	area kernel.DeliveryArea,
	totalPizzasOrdered int,
	birthdayRewardRedeemed bool,
) (*Customer, error) {
	customer := &Customer{
		birthdayRewardRedeemed: birthdayRewardRedeemed,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setBirthdate(birthdate),
		customer.setArea(area),
		customer.setTotalPizzasOrdered(totalPizzasOrdered),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Birthdate returns the customer's date of birth.
func (c *Customer) Birthdate() time.Time {
	return c.birthdate
}

// Area returns the customer's delivery area.
func (c *Customer) Area() kernel.DeliveryArea {
	return c.area
}

// TotalPizzasOrdered returns the lifetime pizza counter.
func (c *Customer) TotalPizzasOrdered() int {
	return c.totalPizzasOrdered
}

// BirthdayRewardRedeemed reports whether this cycle's birthday reward
// has already been used.
func (c *Customer) BirthdayRewardRedeemed() bool {
	return c.birthdayRewardRedeemed
}

// HasLoyaltyDiscount reports whether the lifetime pizza counter has reached
// the loyalty threshold.
func (c *Customer) HasLoyaltyDiscount() bool {
	return c.totalPizzasOrdered >= LoyaltyThreshold
}

// ResetLoyaltyCounter sets the lifetime pizza counter back to zero.
// Called when the loyalty discount is redeemed.
func (c *Customer) ResetLoyaltyCounter() {
	c.totalPizzasOrdered = 0
}

// AddPizzasOrdered increments the lifetime pizza counter by the number of
// pizzas in a placed order. Non-positive counts are ignored.
func (c *Customer) AddPizzasOrdered(count int) {
	if count <= 0 {
		return
	}
	c.totalPizzasOrdered += count
}

// IsBirthday reports whether now falls on the customer's birthday,
// matching month and day only.
func (c *Customer) IsBirthday(now time.Time) bool {
	return now.Month() == c.birthdate.Month() && now.Day() == c.birthdate.Day()
}

// HasBirthdayReward reports whether the birthday reward applies right now:
// it is the customer's birthday and the reward is unredeemed this cycle.
func (c *Customer) HasBirthdayReward(now time.Time) bool {
	return c.IsBirthday(now) && !c.birthdayRewardRedeemed
}

// RedeemBirthdayReward marks this cycle's birthday reward as used.
func (c *Customer) RedeemBirthdayReward() {
	c.birthdayRewardRedeemed = true
}

// ResetBirthdayReward clears the redeemed flag for the next cycle.
func (c *Customer) ResetBirthdayReward() {
	c.birthdayRewardRedeemed = false
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setBirthdate(birthdate time.Time) error {
	if birthdate.IsZero() {
		return ErrBirthdateIsRequired
	}
	c.birthdate = birthdate
	return nil
}

func (c *Customer) setArea(area kernel.DeliveryArea) error {
	if err := area.Validate(); err != nil {
		return err
	}
	c.area = area
	return nil
}

func (c *Customer) setTotalPizzasOrdered(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidError("total pizzas ordered")
	}
	c.totalPizzasOrdered = count
	return nil
}
