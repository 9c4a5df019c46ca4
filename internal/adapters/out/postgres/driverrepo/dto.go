// Package driverrepo maps driver entities to the drivers table.
package driverrepo

import (
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
)

// DriverDTO is the row layout of the drivers table.
type DriverDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:25;not null"`
	Car  string `gorm:"size:25;not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:   d.ID().Int64(),
		Name: d.Name(),
		Car:  d.Car(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(kernel.ID(dto.ID), dto.Name, dto.Car)
}
