package services

import (
	"time"

	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// loyaltyPercentage is the discount granted when a customer's lifetime
// pizza count reaches the loyalty threshold.
var loyaltyPercentage = decimal.NewFromInt(10)

// DiscountCalculator is a domain service that computes the total discount
// for an order and records it on the order. It is the only place allowed to
// mutate a customer's loyalty counter and birthday-reward flag, and it
// redeems the discount code it consumes.
//
// Three discount layers are evaluated independently, each against the
// original subtotal, and stacked additively:
//
//  1. Code: an attached unredeemed code grants subtotal x percentage/100;
//     the code is marked redeemed.
//  2. Loyalty: a lifetime pizza count at or above the threshold grants 10%
//     of the subtotal; the counter resets to zero.
//  3. Birthday: when the order date matches the customer's birthdate and
//     the reward was not yet redeemed this cycle, the discount is overridden
//     to the full subtotal. The override replaces the stacked amount; the
//     side effects of layers 1 and 2 still apply.
//
// After discounting, the order's pizza count is added to the customer's
// lifetime counter.
//
// Code eligibility (unredeemed, owner matches) is a boundary concern:
// callers validate the code before handing it in, and an ineligible code is
// simply not passed. The calculator therefore never fails on code state.
type DiscountCalculator struct{}

// NewDiscountCalculator creates a new DiscountCalculator instance.
func NewDiscountCalculator() DiscountCalculator {
	return DiscountCalculator{}
}

// Apply computes the discount for the order at the given time, records it
// on the order together with the consumed code's ID, and performs the
// customer and code side effects. The code may be nil.
//
// Every percentage is taken of the original subtotal and rounded half-up
// to cents before summing; stacked layers are never combined into a single
// percentage first.
func (dc DiscountCalculator) Apply(
	o *order.Order,
	cust *customer.Customer,
	code *discount.DiscountCode,
	now time.Time,
) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := cust.Validate(); err != nil {
		return kernel.Money{}, err
	}

	subtotal := o.Subtotal()
	amount := kernel.ZeroMoney()

	var codeID *kernel.UUID
	if code != nil {
		if err := code.Redeem(); err != nil {
			return kernel.Money{}, err
		}
		amount = amount.Add(subtotal.Percent(code.Percentage()))
		id := code.ID()
		codeID = &id
	}

	if cust.HasLoyaltyDiscount() {
		amount = amount.Add(subtotal.Percent(loyaltyPercentage))
		cust.ResetLoyaltyCounter()
	}

	if cust.HasBirthdayReward(now) {
		amount = subtotal
		cust.RedeemBirthdayReward()
	}

	if err := o.ApplyDiscount(amount, codeID); err != nil {
		return kernel.Money{}, err
	}

	cust.AddPizzasOrdered(o.PizzaCount())

	return amount, nil
}
