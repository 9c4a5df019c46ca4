package commands_test

import (
	"errors"
	"testing"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateDriverCommand("Bob", "Audi A6")
	stored, _ := driver.RestoreDriver(1, "Bob", "Audi A6")

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(d *driver.Driver) bool {
			return d.Name() == "Bob" && d.Car() == "Audi A6" && d.ID() == 0
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDriverCommandHandler(factory)
	d, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(1), d.ID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockDriverUoWFactory)
	h := commands.NewCreateDriverCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateDriverCommand{})

	require.ErrorIs(t, err, commands.ErrCreateDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDriverCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateDriverCommand("Bob", "Audi A6")

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDriverCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateDriverCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateDriverCommand("Bob", "Audi A6")

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil, errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDriverCommandHandler(factory)
	d, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, d)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateDriverCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateDriverCommand("Bob", "Audi A6")
	stored, _ := driver.RestoreDriver(1, "Bob", "Audi A6")

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDriverCommandHandler(factory)
	d, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Nil(t, d)
	uow.AssertExpectations(t)
}
