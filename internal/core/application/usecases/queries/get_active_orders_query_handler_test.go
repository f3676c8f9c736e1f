package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

func Test_GetActiveOrdersQueryHandler_EmptyDatabase(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetActiveOrdersQueryHandler(f.db)

	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func Test_GetActiveOrdersQueryHandler_ExcludesTerminalOrders(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetActiveOrdersQueryHandler(f.db)
	ctx := context.Background()
	now := time.Now().UTC()

	oldest := f.placeOrder(t, now.Add(-2*time.Hour), "")
	newest := f.placeOrder(t, now, "")

	delivered := f.placeOrder(t, now.Add(-time.Hour), "")
	require.NoError(t, delivered.Advance())
	require.NoError(t, delivered.Advance())
	require.NoError(t, delivered.Advance())
	require.NoError(t, f.orders.Update(ctx, delivered))

	cancelled := f.placeOrder(t, now, "")
	cancelled.Cancel(now)
	require.NoError(t, f.orders.Update(ctx, cancelled))

	result, err := handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.True(t, oldest.ID().IsEqual(result[0].ID))
	assert.Equal(t, order.Preparing, result[0].Status)
	assert.True(t, newest.ID().IsEqual(result[1].ID))
}

func Test_GetActiveOrdersQueryHandler_FiltersByStatus(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetActiveOrdersQueryHandler(f.db)
	ctx := context.Background()
	now := time.Now().UTC()

	f.placeOrder(t, now, "")

	inProcess := f.placeOrder(t, now, "")
	require.NoError(t, inProcess.Advance())
	require.NoError(t, f.orders.Update(ctx, inProcess))

	query, err := queries.NewGetActiveOrdersQueryWithStatuses([]order.Status{order.InProcess})
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.True(t, inProcess.ID().IsEqual(result[0].ID))
	assert.Equal(t, order.InProcess, result[0].Status)
}

func Test_GetActiveOrdersQueryHandler_FiltersByMultipleStatuses(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetActiveOrdersQueryHandler(f.db)
	ctx := context.Background()
	now := time.Now().UTC()

	preparing := f.placeOrder(t, now.Add(-time.Hour), "")

	inProcess := f.placeOrder(t, now, "")
	require.NoError(t, inProcess.Advance())
	require.NoError(t, f.orders.Update(ctx, inProcess))

	outForDelivery := f.placeOrder(t, now, "")
	require.NoError(t, outForDelivery.Advance())
	require.NoError(t, outForDelivery.Advance())
	require.NoError(t, f.orders.Update(ctx, outForDelivery))

	query, err := queries.NewGetActiveOrdersQueryWithStatuses(
		[]order.Status{order.Preparing, order.OutForDelivery})
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.True(t, preparing.ID().IsEqual(result[0].ID))
	assert.True(t, outForDelivery.ID().IsEqual(result[1].ID))
}

func Test_GetActiveOrdersQueryHandler_StatusFilterIncludesTerminal(t *testing.T) {
	f := newQueryFixture(t)
	handler := queries.NewGetActiveOrdersQueryHandler(f.db)
	ctx := context.Background()
	now := time.Now().UTC()

	cancelled := f.placeOrder(t, now, "")
	cancelled.Cancel(now)
	require.NoError(t, f.orders.Update(ctx, cancelled))

	query, err := queries.NewGetActiveOrdersQueryWithStatuses([]order.Status{order.Cancelled})
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.True(t, cancelled.ID().IsEqual(result[0].ID))
}

func Test_GetActiveOrdersQuery_RequiresConstructor(t *testing.T) {
	var query queries.GetActiveOrdersQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func Test_GetActiveOrdersQuery_RequiresAtLeastOneStatus(t *testing.T) {
	_, err := queries.NewGetActiveOrdersQueryWithStatuses(nil)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
