// Package ports defines the persistence contracts of the taxi domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers.
type DriverRepository interface {
	// Add inserts a new driver and returns it with its generated identifier.
	Add(ctx context.Context, d *driver.Driver) (*driver.Driver, error)

	// Get retrieves a driver by identifier.
	// Returns errs.ObjectNotFoundError when no driver has that identifier.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// Delete removes a driver together with every order referencing it.
	// Returns errs.ObjectNotFoundError when no driver has that identifier.
	Delete(ctx context.Context, id kernel.ID) error
}
