package driver

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created through
	// NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

// Driver represents a taxi driver.
type Driver struct {
	id   kernel.ID
	name string
	car  string

	isConstructed bool
}

// NewDriver creates a driver that has not been persisted yet; its ID is zero
// until the repository assigns one.
func NewDriver(name, car string) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setName(name),
		d.setCar(car),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a persisted driver from storage.
func RestoreDriver(id kernel.ID, name, car string) (*Driver, error) {
	d, err := NewDriver(name, car)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}
	d.id = id

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.ID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Car() string {
	return d.car
}

func (d *Driver) setName(name string) error {
	if err := kernel.ValidateText("name", name, kernel.NameMaxLength); err != nil {
		return err
	}
	d.name = name
	return nil
}

func (d *Driver) setCar(car string) error {
	if err := kernel.ValidateText("car", car, kernel.CarMaxLength); err != nil {
		return err
	}
	d.car = car
	return nil
}
