package guard_test

import (
	"errors"
	"testing"

	"taxi/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuardEmbeddedInCommand(t *testing.T) {
	errDeleteNotConstructed := errors.New("DeleteDriverCommand must be created via NewDeleteDriverCommand")

	type deleteDriverCommand struct {
		driverID int64
		guard    guard.ConstructorGuard
	}

	newDeleteDriverCommand := func(id int64) (deleteDriverCommand, error) {
		if id <= 0 {
			return deleteDriverCommand{}, errors.New("driver id must be positive")
		}
		return deleteDriverCommand{driverID: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newDeleteDriverCommand(7)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errDeleteNotConstructed))
		assert.Equal(t, int64(7), cmd.driverID)
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		cmd := deleteDriverCommand{driverID: 7}

		assert.Equal(t, errDeleteNotConstructed, cmd.guard.Validate(errDeleteNotConstructed))
	})

	t.Run("copy_keeps_constructed_state", func(t *testing.T) {
		cmd, err := newDeleteDriverCommand(3)
		require.NoError(t, err)

		cp := cmd

		require.NoError(t, cp.guard.Validate(errDeleteNotConstructed))
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
