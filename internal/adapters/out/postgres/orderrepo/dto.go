// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are owned rows deleted with their order. Status is stored as
// its string form so monitoring queries stay readable.
type OrderDTO struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	CourierID      *uuid.UUID    `gorm:"type:uuid;index"`
	DiscountCodeID *uuid.UUID    `gorm:"type:uuid"`
	Status         string        `gorm:"type:varchar(32);not null;index"`
	CreatedAt      time.Time     `gorm:"not null"`
	DiscountAmount string        `gorm:"type:numeric(10,2);not null"`
	Items          []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one cart position of a persisted order.
// UnitPrice snapshots the product's price at placement time so totals
// survive later catalog changes.
type LineItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"type:int;not null"`
	UnitPrice string    `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var courierID *uuid.UUID
	if id := o.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var discountCodeID *uuid.UUID
	if id := o.DiscountCodeID(); id != nil {
		raw := id.Bytes()
		discountCodeID = &raw
	}

	items := make([]LineItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemDTO{
			OrderID:   orderID,
			ProductID: item.Product().ID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.Product().Price().String(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		CustomerID:     o.CustomerID().Bytes(),
		CourierID:      courierID,
		DiscountCodeID: discountCodeID,
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt(),
		DiscountAmount: o.DiscountApplied().String(),
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate. The items
// are resolved against the catalog by the caller and passed in.
func toDomain(dto OrderDTO, items []order.LineItem) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var discountCodeID *kernel.UUID
	if dto.DiscountCodeID != nil {
		dID, codeErr := kernel.UUIDFromBytes((*dto.DiscountCodeID)[:])
		if codeErr != nil {
			return nil, codeErr
		}
		discountCodeID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	discountApplied, err := kernel.MoneyFromString(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, dto.CreatedAt, status, items, discountApplied, courierID, discountCodeID)
}
