package commands

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
)

// CreateDriverCommand represents a request to register a new driver.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Bob", "Audi A6")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	d, err := handler.Handle(ctx, cmd)
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	name string
	car  string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand validates that name and car are present and fit their columns.
func NewCreateDriverCommand(name, car string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCar(car),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Car() string {
	return c.car
}

func (c *CreateDriverCommand) setName(name string) error {
	if err := kernel.ValidateText("name", name, kernel.NameMaxLength); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CreateDriverCommand) setCar(car string) error {
	if err := kernel.ValidateText("car", car, kernel.CarMaxLength); err != nil {
		return err
	}
	c.car = car
	return nil
}
