package commands_test

import (
	"strings"
	"testing"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateDriverCommand("Bob", "Audi A6")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Bob", cmd.Name())
	assert.Equal(t, "Audi A6", cmd.Car())
}

func TestNewCreateDriverCommand_EmptyFields(t *testing.T) {
	_, err := commands.NewCreateDriverCommand("", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "car")
}

func TestNewCreateDriverCommand_NameTooLong(t *testing.T) {
	_, err := commands.NewCreateDriverCommand(strings.Repeat("n", 26), "Audi A6")

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCreateDriverCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateDriverCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDriverCommandIsNotConstructed)
}
