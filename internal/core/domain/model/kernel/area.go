package kernel

import (
	"pizzeria/internal/pkg/errs"
)

// ErrDeliveryAreaIsRequired is returned when attempting to use a zero-value DeliveryArea.
// Areas must be created via NewDeliveryArea.
var ErrDeliveryAreaIsRequired = errs.NewValueIsRequiredError("delivery area code")

// DeliveryArea is an opaque area code identifying a delivery zone.
// Each courier serves exactly one area and each customer belongs to exactly
// one area; the code itself carries no further structure.
//
// DeliveryArea is an immutable value object. The zero value is invalid and
// fails validation.
type DeliveryArea struct {
	code string
}

// NewDeliveryArea creates a DeliveryArea from an area code.
// Returns an error for an empty code.
func NewDeliveryArea(code string) (DeliveryArea, error) {
	if code == "" {
		return DeliveryArea{}, ErrDeliveryAreaIsRequired
	}
	return DeliveryArea{code: code}, nil
}

// Validate checks that the area was created with a non-empty code.
func (a DeliveryArea) Validate() error {
	if a.code == "" {
		return ErrDeliveryAreaIsRequired
	}
	return nil
}

// Code returns the raw area code.
func (a DeliveryArea) Code() string {
	return a.code
}

// IsEqual compares two areas by code.
func (a DeliveryArea) IsEqual(other DeliveryArea) bool {
	return a.code == other.code
}

// String implements fmt.Stringer.
func (a DeliveryArea) String() string {
	return a.code
}
