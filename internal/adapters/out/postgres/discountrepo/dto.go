// Package discountrepo provides data transfer objects and mapping functions
// for discount code persistence.
package discountrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
)

// DiscountCodeDTO represents the database structure for persisting discount codes.
// A null owner_id marks a generic code usable by any customer.
type DiscountCodeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code       string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Percentage string     `gorm:"type:numeric(5,2);not null"`
	Redeemed   bool       `gorm:"not null;default:false"`
	OwnerID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for discount code entities.
func (DiscountCodeDTO) TableName() string {
	return "discount_codes"
}

// fromDomain converts a discount code domain aggregate to its database representation.
func fromDomain(code *discount.DiscountCode) DiscountCodeDTO {
	var ownerID *uuid.UUID
	if owner := code.OwnerID(); owner != nil {
		id := owner.Bytes()
		ownerID = &id
	}

	return DiscountCodeDTO{
		ID:         code.ID().Bytes(),
		Code:       code.Code(),
		Percentage: code.Percentage().StringFixed(2),
		Redeemed:   code.IsRedeemed(),
		OwnerID:    ownerID,
	}
}

// toDomain converts a database DTO to a discount code domain aggregate.
func toDomain(dto DiscountCodeDTO) (*discount.DiscountCode, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	percentage, err := decimal.NewFromString(dto.Percentage)
	if err != nil {
		return nil, err
	}

	var ownerID *kernel.UUID
	if dto.OwnerID != nil {
		owner, err := kernel.UUIDFromBytes(dto.OwnerID[:])
		if err != nil {
			return nil, err
		}
		ownerID = &owner
	}

	return discount.RestoreDiscountCode(id, dto.Code, percentage, dto.Redeemed, ownerID)
}
