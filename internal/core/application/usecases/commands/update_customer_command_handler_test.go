package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCustomerCommand(
		"test1", "Renamed", "", "", "2 Dock St", "", "",
	)
	require.NoError(t, err)

	profile, err := account.NewCustomer("test1", "Tester", "555-0101", "", "", "", "")
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	uow := new(MockIdentityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("GetByAccount", mock.Anything, "test1").Return(profile, nil).Once(),
		customers.On("Update", mock.Anything, mock.AnythingOfType("*account.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", profile.Name())
	assert.Equal(t, "2 Dock St", profile.Address())
	assert.Equal(t, "555-0101", profile.Phone())
	customers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCustomerCommand("ghost", "Renamed", "", "", "", "", "")
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	uow := new(MockIdentityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("GetByAccount", mock.Anything, "ghost").
			Return(nil, errs.NewObjectNotFoundError("customer", "ghost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
