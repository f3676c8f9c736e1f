package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

func newCourierUoW(courierRepo *MockCourierRepository) (*MockPlacementUoW, *MockCourierUoWFactory) {
	uow := new(MockPlacementUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("CourierRepository").Return(courierRepo)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	area, err := kernel.NewDeliveryArea("10115")
	require.NoError(t, err)
	cmd, err := commands.NewCreateCourierCommand("John Doe", area)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow, factory := newCourierUoW(courierRepo)

	courierRepo.On("Add", mock.Anything, mock.AnythingOfType("*courier.Courier")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*courier.Courier)
			assert.True(t, created.ID().IsEqual(cmd.CourierID()))
			assert.Equal(t, "John Doe", created.Name())
		}).
		Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	area, err := kernel.NewDeliveryArea("10115")
	require.NoError(t, err)
	cmd, err := commands.NewCreateCourierCommand("John Doe", area)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow, factory := newCourierUoW(courierRepo)

	courierRepo.On("Add", mock.Anything, mock.Anything).
		Return(errors.New("insert failed")).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCourierUoWFactory)

	h := commands.NewCreateCourierCommandHandler(factory)
	err := h.Handle(ctx, commands.CreateCourierCommand{})

	assert.ErrorIs(t, err, commands.ErrCreateCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
