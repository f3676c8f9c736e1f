// Package productrepo provides data transfer objects and mapping functions for
// catalog persistence. Products are polymorphic: one products table carries a
// kind discriminator, and pizza rows own their ingredient rows.
package productrepo

import (
	"fmt"

	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Kind discriminator values stored in the products table.
const (
	kindPizza   = "pizza"
	kindDrink   = "drink"
	kindDessert = "dessert"
)

// ProductDTO represents the database structure for persisting catalog products.
// Price is null for pizzas (derived from ingredients); the vegan/vegetarian
// flags are only stored for desserts, pizzas derive them from ingredients.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Kind         string          `gorm:"type:varchar(16);not null;index"`
	Price        *string         `gorm:"type:numeric(10,2)"`
	IsVegan      bool            `gorm:"not null;default:false"`
	IsVegetarian bool            `gorm:"not null;default:false"`
	Ingredients  []IngredientDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// IngredientDTO represents one priced component of a pizza row.
// Position preserves the ingredient list order, duplicates included.
type IngredientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"type:int;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Cost         string    `gorm:"type:numeric(10,2);not null"`
	IsVegan      bool      `gorm:"not null"`
	IsVegetarian bool      `gorm:"not null"`
}

// TableName specifies the database table name for pizza ingredients.
func (IngredientDTO) TableName() string {
	return "ingredients"
}

// fromDomain converts a catalog product to its database representation.
func fromDomain(product catalog.Product) (ProductDTO, error) {
	switch p := product.(type) {
	case *catalog.Pizza:
		ingredients := make([]IngredientDTO, 0, len(p.Ingredients()))
		for position, ingredient := range p.Ingredients() {
			ingredients = append(ingredients, IngredientDTO{
				ID:           ingredient.ID().Bytes(),
				ProductID:    p.ID().Bytes(),
				Position:     position,
				Name:         ingredient.Name(),
				Cost:         ingredient.Cost().String(),
				IsVegan:      ingredient.IsVegan(),
				IsVegetarian: ingredient.IsVegetarian(),
			})
		}
		return ProductDTO{
			ID:          p.ID().Bytes(),
			Name:        p.Name(),
			Kind:        kindPizza,
			Ingredients: ingredients,
		}, nil
	case *catalog.Drink:
		price := p.Price().String()
		return ProductDTO{
			ID:    p.ID().Bytes(),
			Name:  p.Name(),
			Kind:  kindDrink,
			Price: &price,
		}, nil
	case *catalog.Dessert:
		price := p.Price().String()
		return ProductDTO{
			ID:           p.ID().Bytes(),
			Name:         p.Name(),
			Kind:         kindDessert,
			Price:        &price,
			IsVegan:      p.IsVegan(),
			IsVegetarian: p.IsVegetarian(),
		}, nil
	default:
		return ProductDTO{}, errs.NewValueIsInvalidErrorWithCause(
			"product kind",
			fmt.Errorf("unsupported product type %T", product),
		)
	}
}

// toDomain converts a database DTO to its concrete catalog variant.
func toDomain(dto ProductDTO) (catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	switch dto.Kind {
	case kindPizza:
		ingredients := make([]catalog.Ingredient, 0, len(dto.Ingredients))
		for _, ingredientDTO := range dto.Ingredients {
			ingredient, ingErr := ingredientToDomain(ingredientDTO)
			if ingErr != nil {
				return nil, ingErr
			}
			ingredients = append(ingredients, ingredient)
		}
		return catalog.NewPizza(id, dto.Name, ingredients)
	case kindDrink:
		price, priceErr := priceFromDTO(dto)
		if priceErr != nil {
			return nil, priceErr
		}
		return catalog.NewDrink(id, dto.Name, price)
	case kindDessert:
		price, priceErr := priceFromDTO(dto)
		if priceErr != nil {
			return nil, priceErr
		}
		return catalog.NewDessert(id, dto.Name, price, dto.IsVegan, dto.IsVegetarian)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"product kind",
			fmt.Errorf("unknown kind %q", dto.Kind),
		)
	}
}

func ingredientToDomain(dto IngredientDTO) (catalog.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Ingredient{}, err
	}

	cost, err := kernel.MoneyFromString(dto.Cost)
	if err != nil {
		return catalog.Ingredient{}, err
	}

	return catalog.NewIngredient(id, dto.Name, cost, dto.IsVegan, dto.IsVegetarian)
}

func priceFromDTO(dto ProductDTO) (kernel.Money, error) {
	if dto.Price == nil {
		return kernel.Money{}, errs.NewValueIsRequiredError("product price")
	}
	return kernel.MoneyFromString(*dto.Price)
}
