// Package discount provides the DiscountCode aggregate: a single-use
// percentage code, optionally restricted to one owning customer.
//
// Key business rules:
//   - The percentage lies in [0, 100] with two decimal places
//   - Once redeemed a code can never be reused; redemption is recorded
//     atomically with discount application by the persistence layer
//   - A code with an owner may only be used by that customer; a code
//     without an owner is usable by anyone
package discount

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrCodeIsRequired is returned when creating a discount code without a code string.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("discount code")
	// ErrCodeAlreadyRedeemed is returned when redeeming a code a second time.
	ErrCodeAlreadyRedeemed = errors.New("discount code already redeemed")
	// ErrCodeIsNotConstructed is returned when using an improperly initialized DiscountCode.
	ErrCodeIsNotConstructed = errors.New("DiscountCode must be created via NewDiscountCode constructor")
)

var oneHundred = decimal.NewFromInt(100)

// DiscountCode is a single-use promo code granting a percentage off an
// order's subtotal.
type DiscountCode struct {
	id         kernel.UUID
	code       string
	percentage decimal.Decimal
	redeemed   bool
	ownerID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDiscountCode creates an unredeemed DiscountCode with validation.
// ownerID of nil means the code is usable by any customer.
func NewDiscountCode(
	id kernel.UUID,
	code string,
	percentage decimal.Decimal,
	ownerID *kernel.UUID,
) (*DiscountCode, error) {
	return RestoreDiscountCode(id, code, percentage, false, ownerID)
}

// RestoreDiscountCode reconstructs a DiscountCode from persistent storage,
// including its redeemed state.
func RestoreDiscountCode(
	id kernel.UUID,
	code string,
	percentage decimal.Decimal,
	redeemed bool,
	ownerID *kernel.UUID,
) (*DiscountCode, error) {
	discountCode := &DiscountCode{
		redeemed: redeemed,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		discountCode.setID(id),
		discountCode.setCode(code),
		discountCode.setPercentage(percentage),
		discountCode.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return discountCode, nil
}

// Validate ensures the DiscountCode was created through a constructor.
func (d *DiscountCode) Validate() error {
	if d == nil {
		return ErrCodeIsNotConstructed
	}
	return d.guard.Validate(ErrCodeIsNotConstructed)
}

// ID returns the discount code's unique identifier.
func (d *DiscountCode) ID() kernel.UUID {
	return d.id
}

// Code returns the unique code string customers enter at checkout.
func (d *DiscountCode) Code() string {
	return d.code
}

// Percentage returns the discount percentage in [0, 100].
func (d *DiscountCode) Percentage() decimal.Decimal {
	return d.percentage
}

// IsRedeemed reports whether the code has already been used.
func (d *DiscountCode) IsRedeemed() bool {
	return d.redeemed
}

// OwnerID returns the restricting customer id, or nil when the code is
// usable by anyone.
func (d *DiscountCode) OwnerID() *kernel.UUID {
	return d.ownerID
}

// IsUsableBy reports whether the given customer may redeem this code:
// it must be unredeemed and either unowned or owned by that customer.
func (d *DiscountCode) IsUsableBy(customerID kernel.UUID) bool {
	if d.redeemed {
		return false
	}
	if d.ownerID == nil {
		return true
	}
	return d.ownerID.IsEqual(customerID)
}

// Redeem marks the code as used. Returns ErrCodeAlreadyRedeemed if it was
// used before; a redeemed code can never be reused.
func (d *DiscountCode) Redeem() error {
	if d.redeemed {
		return ErrCodeAlreadyRedeemed
	}
	d.redeemed = true
	return nil
}

func (d *DiscountCode) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DiscountCode) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	d.code = code
	return nil
}

func (d *DiscountCode) setPercentage(percentage decimal.Decimal) error {
	if percentage.IsNegative() || percentage.GreaterThan(oneHundred) {
		return errs.NewValueIsOutOfRangeError("discount percentage", percentage.String(), 0, 100)
	}
	d.percentage = percentage.Round(2)
	return nil
}

func (d *DiscountCode) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return err
		}
	}
	d.ownerID = ownerID
	return nil
}
