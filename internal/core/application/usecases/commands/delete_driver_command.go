package commands

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/guard"
)

var (
	ErrDeleteDriverCommandIsNotConstructed = errors.New(
		"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
	)
)

// DeleteDriverCommand removes a driver and, through the foreign key cascade,
// every order that references it.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteDriverCommand(driverID int64) (DeleteDriverCommand, error) {
	id, err := kernel.NewID("driver_id", driverID)
	if err != nil {
		return DeleteDriverCommand{}, err
	}

	return DeleteDriverCommand{
		driverID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

func (c DeleteDriverCommand) DriverID() kernel.ID {
	return c.driverID
}
