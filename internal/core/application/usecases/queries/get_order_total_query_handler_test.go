package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/adapters/out/postgres/productrepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// stubTracker satisfies the repositories' aggregate tracker in tests.
type stubTracker struct{}

func (stubTracker) TrackAggregate(kernel.UUID, any) {}

type queryFixture struct {
	db     *gorm.DB
	orders *orderrepo.GormOrderRepository
	pizza  *catalog.Pizza
	drink  *catalog.Drink
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.IngredientDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
	))

	products := productrepo.NewGormProductRepository(db, stubTracker{})
	orders := orderrepo.NewGormOrderRepository(db, stubTracker{}, products)

	cost, err := kernel.MoneyFromString("3.00")
	require.NoError(t, err)
	ingredient, err := catalog.NewIngredient(kernel.NewUUID(), "dough", cost, true, true)
	require.NoError(t, err)
	pizza, err := catalog.NewPizza(kernel.NewUUID(), "Margherita", []catalog.Ingredient{ingredient})
	require.NoError(t, err)

	price, err := kernel.MoneyFromString("2.50")
	require.NoError(t, err)
	drink, err := catalog.NewDrink(kernel.NewUUID(), "Cola", price)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, products.Add(ctx, pizza))
	require.NoError(t, products.Add(ctx, drink))

	return &queryFixture{db: db, orders: orders, pizza: pizza, drink: drink}
}

func (f *queryFixture) placeOrder(
	t *testing.T,
	createdAt time.Time,
	discount string,
) *order.Order {
	t.Helper()

	pizzaItem, err := order.NewLineItem(f.pizza, 2)
	require.NoError(t, err)
	drinkItem, err := order.NewLineItem(f.drink, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), createdAt, []order.LineItem{pizzaItem, drinkItem})
	require.NoError(t, err)

	if discount != "" {
		amount, moneyErr := kernel.MoneyFromString(discount)
		require.NoError(t, moneyErr)
		require.NoError(t, o.ApplyDiscount(amount, nil))
	}

	require.NoError(t, f.orders.Add(context.Background(), o))
	return o
}

func Test_GetOrderTotalQueryHandler_BreakdownWithoutDiscount(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetOrderTotalQueryHandler(f.db)

	// Two pizzas at 4.58 each plus one drink at 2.50.
	o := f.placeOrder(t, time.Now().UTC(), "")

	query, err := queries.NewGetOrderTotalQuery(o.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, "11.66", resp.Subtotal.String())
	assert.Equal(t, "0.00", resp.Discount.String())
	assert.Equal(t, "11.66", resp.Total.String())
}

func Test_GetOrderTotalQueryHandler_BreakdownWithDiscount(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetOrderTotalQueryHandler(f.db)

	o := f.placeOrder(t, time.Now().UTC(), "1.17")

	query, err := queries.NewGetOrderTotalQuery(o.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, "11.66", resp.Subtotal.String())
	assert.Equal(t, "1.17", resp.Discount.String())
	assert.Equal(t, "10.49", resp.Total.String())
}

func Test_GetOrderTotalQueryHandler_FullDiscountClampsToZero(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetOrderTotalQueryHandler(f.db)

	o := f.placeOrder(t, time.Now().UTC(), "11.66")

	query, err := queries.NewGetOrderTotalQuery(o.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, "11.66", resp.Discount.String())
	assert.True(t, resp.Total.IsZero())
}

func Test_GetOrderTotalQueryHandler_OrderNotFound(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetOrderTotalQueryHandler(f.db)

	query, err := queries.NewGetOrderTotalQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_GetOrderTotalQuery_RequiresConstructor(t *testing.T) {
	var query queries.GetOrderTotalQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetOrderTotalQueryIsNotConstructed)
}
