package commands

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/guard"
)

var (
	ErrDeleteClientCommandIsNotConstructed = errors.New(
		"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
	)
)

// DeleteClientCommand removes a client and the orders that reference it.
type DeleteClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteClientCommand(clientID int64) (DeleteClientCommand, error) {
	id, err := kernel.NewID("client_id", clientID)
	if err != nil {
		return DeleteClientCommand{}, err
	}

	return DeleteClientCommand{
		clientID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

func (c DeleteClientCommand) ClientID() kernel.ID {
	return c.clientID
}
