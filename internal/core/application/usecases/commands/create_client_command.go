package commands

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
)

// CreateClientCommand represents a request to register a new client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name  string
	isVIP bool

	guard guard.ConstructorGuard
}

func NewCreateClientCommand(name string, isVIP bool) (CreateClientCommand, error) {
	if err := kernel.ValidateText("name", name, kernel.NameMaxLength); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		name:  name,
		isVIP: isVIP,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) Name() string {
	return c.name
}

func (c CreateClientCommand) IsVIP() bool {
	return c.isVIP
}
