// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
// The loyalty counter and birthday reward flag are written exclusively by
// order placement.
type CustomerDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                   string    `gorm:"type:varchar(255);not null"`
	Birthdate              time.Time `gorm:"not null"`
	Area                   string    `gorm:"type:varchar(32);not null;index"`
	TotalPizzasOrdered     int       `gorm:"type:int;not null;default:0"`
	BirthdayRewardRedeemed bool      `gorm:"not null;default:false"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:                     customer.ID().Bytes(),
		Name:                   customer.Name(),
		Birthdate:              customer.Birthdate(),
		Area:                   customer.Area().Code(),
		TotalPizzasOrdered:     customer.TotalPizzasOrdered(),
		BirthdayRewardRedeemed: customer.BirthdayRewardRedeemed(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	area, err := kernel.NewDeliveryArea(dto.Area)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id, dto.Name, dto.Birthdate, area, dto.TotalPizzasOrdered, dto.BirthdayRewardRedeemed)
}
