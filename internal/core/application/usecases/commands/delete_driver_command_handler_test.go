package commands_test

import (
	"errors"
	"testing"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteDriverCommand(t *testing.T) {
	cmd, err := commands.NewDeleteDriverCommand(4)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(4), cmd.DriverID())

	_, err = commands.NewDeleteDriverCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.DeleteDriverCommand{}.Validate(), commands.ErrDeleteDriverCommandIsNotConstructed)
}

func TestDeleteDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteDriverCommand(4)
	stored, _ := driver.RestoreDriver(4, "Bob", "Audi A6")

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(4)).Return(stored, nil).Once(),
		repo.On("Delete", ctx, kernel.ID(4)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDriverCommandHandler(factory)
	d, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, stored, d)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteDriverCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteDriverCommand(4)

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(repo).Once()
	repo.On("Get", ctx, kernel.ID(4)).Return(nil, errs.NewObjectNotFoundError("driver", kernel.ID(4))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDriverCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeleteDriverCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteDriverCommand(4)
	stored, _ := driver.RestoreDriver(4, "Bob", "Audi A6")

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(repo).Once()
	repo.On("Get", ctx, kernel.ID(4)).Return(stored, nil).Once()
	repo.On("Delete", ctx, kernel.ID(4)).Return(errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDriverCommandHandler(factory)
	d, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	assert.Nil(t, d)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
