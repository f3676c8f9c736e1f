package kernel

import (
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via NewMoney, MoneyFromString, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money is an immutable fixed-point currency amount with two decimal places.
// It wraps github.com/shopspring/decimal to avoid binary floating point in
// monetary arithmetic.
//
// Every multiplicative operation (Mul, Percent) rounds its result half-up to
// cents before returning. This makes rounding points explicit at the call
// site: chained calculations round each intermediate value, which is the
// behavior the pricing rules require.
//
// Example:
//
//	cost, _ := kernel.MoneyFromString("3.00")
//	margin := cost.Mul(decimal.NewFromFloat(0.40)) // 1.20, already rounded
//	preTax := cost.Add(margin)                     // 4.20
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount, rounding half-up to cents.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		amount: amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// MoneyFromString parses a decimal string such as "4.58" into Money.
// Returns an error for unparseable input.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d), nil
}

// ZeroMoney returns a properly constructed zero amount.
func ZeroMoney() Money {
	return NewMoney(decimal.Zero)
}

// Validate checks that the Money was created through a constructor.
// The zero value fails validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount))
}

// Sub returns the difference of two amounts. The result may be negative;
// callers that require a floor must clamp explicitly.
func (m Money) Sub(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount))
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// Mul returns the amount multiplied by a decimal factor, rounded half-up to cents.
// decimal.Decimal.Round rounds half away from zero, which is half-up for the
// non-negative amounts used throughout pricing.
func (m Money) Mul(factor decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(factor))
}

// Percent returns the given percentage of the amount, rounded half-up to cents.
// A percentage of 20 yields one fifth of the amount.
func (m Money) Percent(percentage decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(percentage).Div(decimal.NewFromInt(100)))
}

// IsZero reports whether the amount equals 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// GreaterThan reports whether the amount exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly two decimal places, e.g. "4.58".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
