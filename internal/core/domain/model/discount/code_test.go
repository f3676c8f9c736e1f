package discount_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscountCode_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	code, err := discount.NewDiscountCode(id, "WELCOME20", decimal.NewFromInt(20), nil)
	require.NoError(t, err)
	require.NoError(t, code.Validate())
	assert.Equal(t, id, code.ID())
	assert.Equal(t, "WELCOME20", code.Code())
	assert.True(t, code.Percentage().Equal(decimal.NewFromInt(20)))
	assert.False(t, code.IsRedeemed())
	assert.Nil(t, code.OwnerID())
}

func TestNewDiscountCode_InvalidInput(t *testing.T) {
	_, err := discount.NewDiscountCode(kernel.UUID{}, "WELCOME20", decimal.NewFromInt(20), nil)
	require.Error(t, err)

	_, err = discount.NewDiscountCode(kernel.NewUUID(), "", decimal.NewFromInt(20), nil)
	require.ErrorIs(t, err, discount.ErrCodeIsRequired)

	_, err = discount.NewDiscountCode(kernel.NewUUID(), "NEG", decimal.NewFromInt(-1), nil)
	require.Error(t, err)

	_, err = discount.NewDiscountCode(kernel.NewUUID(), "BIG", decimal.NewFromInt(101), nil)
	require.Error(t, err)
}

func TestNewDiscountCode_PercentageBounds(t *testing.T) {
	_, err := discount.NewDiscountCode(kernel.NewUUID(), "FREE", decimal.NewFromInt(100), nil)
	require.NoError(t, err)

	_, err = discount.NewDiscountCode(kernel.NewUUID(), "NOOP", decimal.Zero, nil)
	require.NoError(t, err)
}

func TestDiscountCode_Redeem(t *testing.T) {
	code, err := discount.NewDiscountCode(kernel.NewUUID(), "WELCOME20", decimal.NewFromInt(20), nil)
	require.NoError(t, err)

	require.NoError(t, code.Redeem())
	assert.True(t, code.IsRedeemed())

	// A redeemed code can never be reused.
	require.ErrorIs(t, code.Redeem(), discount.ErrCodeAlreadyRedeemed)
}

func TestDiscountCode_IsUsableBy(t *testing.T) {
	owner := kernel.NewUUID()
	stranger := kernel.NewUUID()

	anyone, err := discount.NewDiscountCode(kernel.NewUUID(), "ANYONE", decimal.NewFromInt(10), nil)
	require.NoError(t, err)
	assert.True(t, anyone.IsUsableBy(owner))
	assert.True(t, anyone.IsUsableBy(stranger))

	owned, err := discount.NewDiscountCode(kernel.NewUUID(), "OWNED", decimal.NewFromInt(10), &owner)
	require.NoError(t, err)
	assert.True(t, owned.IsUsableBy(owner))
	assert.False(t, owned.IsUsableBy(stranger))

	require.NoError(t, owned.Redeem())
	assert.False(t, owned.IsUsableBy(owner))
}

func TestRestoreDiscountCode_PreservesRedeemedState(t *testing.T) {
	code, err := discount.RestoreDiscountCode(
		kernel.NewUUID(), "USED10", decimal.NewFromInt(10), true, nil)
	require.NoError(t, err)
	assert.True(t, code.IsRedeemed())
	require.ErrorIs(t, code.Redeem(), discount.ErrCodeAlreadyRedeemed)
}

func TestDiscountCode_ZeroValueFailsValidation(t *testing.T) {
	var code discount.DiscountCode
	require.ErrorIs(t, code.Validate(), discount.ErrCodeIsNotConstructed)
}
