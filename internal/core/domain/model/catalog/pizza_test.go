package catalog_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustIngredient(t *testing.T, name, cost string, vegan, vegetarian bool) catalog.Ingredient {
	t.Helper()
	ingredient, err := catalog.NewIngredient(kernel.NewUUID(), name, mustMoney(t, cost), vegan, vegetarian)
	require.NoError(t, err)
	return ingredient
}

func TestNewPizza_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	pizza, err := catalog.NewPizza(id, "Margherita", []catalog.Ingredient{
		mustIngredient(t, "Tomato Sauce", "0.50", true, true),
	})
	require.NoError(t, err)
	assert.Equal(t, id, pizza.ID())
	assert.Equal(t, "Margherita", pizza.Name())
	assert.Equal(t, catalog.KindPizza, pizza.Kind())
	assert.Len(t, pizza.Ingredients(), 1)
}

func TestNewPizza_EmptyName(t *testing.T) {
	_, err := catalog.NewPizza(kernel.NewUUID(), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrPizzaNameIsRequired)
}

func TestNewPizza_InvalidID(t *testing.T) {
	_, err := catalog.NewPizza(kernel.UUID{}, "Margherita", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestPizza_Price_ReferenceCase(t *testing.T) {
	// Ingredients costing 0.50 + 1.00 + 1.50 = 3.00:
	// margin 1.20, price before tax 4.20, tax 0.38, total 4.58.
	pizza, err := catalog.NewPizza(kernel.NewUUID(), "Pepperoni", []catalog.Ingredient{
		mustIngredient(t, "Tomato Sauce", "0.50", true, true),
		mustIngredient(t, "Cheese", "1.00", false, true),
		mustIngredient(t, "Pepperoni", "1.50", false, false),
	})
	require.NoError(t, err)

	assert.Equal(t, "4.58", pizza.Price().String())
}

func TestPizza_Price_RoundsEachStepBeforeNext(t *testing.T) {
	// Cost 1.01: margin 1.01*0.40 = 0.404 -> 0.40 (not 0.404 carried forward),
	// price before tax 1.41, tax 1.41*0.09 = 0.1269 -> 0.13, total 1.54.
	// With unrounded intermediates the total would differ.
	pizza, err := catalog.NewPizza(kernel.NewUUID(), "Bianca", []catalog.Ingredient{
		mustIngredient(t, "Ricotta", "1.01", false, true),
	})
	require.NoError(t, err)

	assert.Equal(t, "1.54", pizza.Price().String())
}

func TestPizza_NoIngredients(t *testing.T) {
	pizza, err := catalog.NewPizza(kernel.NewUUID(), "Plain Base", nil)
	require.NoError(t, err)

	assert.Equal(t, "0.00", pizza.Price().String())
	assert.True(t, pizza.Price().IsZero())
	assert.True(t, pizza.IsVegan())
	assert.True(t, pizza.IsVegetarian())
}

func TestPizza_IsVegan(t *testing.T) {
	vegan, err := catalog.NewPizza(kernel.NewUUID(), "Marinara", []catalog.Ingredient{
		mustIngredient(t, "Tomato Sauce", "0.50", true, true),
	})
	require.NoError(t, err)
	assert.True(t, vegan.IsVegan())

	withCheese, err := catalog.NewPizza(kernel.NewUUID(), "Margherita", []catalog.Ingredient{
		mustIngredient(t, "Tomato Sauce", "0.50", true, true),
		mustIngredient(t, "Cheese", "1.00", false, true),
	})
	require.NoError(t, err)
	assert.False(t, withCheese.IsVegan())
	assert.True(t, withCheese.IsVegetarian())
}

func TestPizza_IsVegetarian(t *testing.T) {
	withMeat, err := catalog.NewPizza(kernel.NewUUID(), "Pepperoni", []catalog.Ingredient{
		mustIngredient(t, "Tomato Sauce", "0.50", true, true),
		mustIngredient(t, "Pepperoni", "1.50", false, false),
	})
	require.NoError(t, err)
	assert.False(t, withMeat.IsVegetarian())
	assert.False(t, withMeat.IsVegan())
}
