// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models straight from SQL, bypassing the aggregates.
package queries

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/guard"
)

var (
	ErrGetDriverQueryIsNotConstructed = errors.New(
		"GetDriverQuery must be created via NewGetDriverQuery constructor",
	)
)

// GetDriverQuery retrieves a single driver by identifier.
//
// Example:
//
//	query, err := NewGetDriverQuery(7)
//	if err != nil {
//	    return err
//	}
//
//	d, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // respond 404
//	}
type GetDriverQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(driverID int64) (GetDriverQuery, error) {
	id, err := kernel.NewID("driver_id", driverID)
	if err != nil {
		return GetDriverQuery{}, err
	}

	return GetDriverQuery{
		driverID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) DriverID() kernel.ID {
	return q.driverID
}

// GetDriverQueryResponse is the driver read model.
type GetDriverQueryResponse struct {
	ID   int64
	Name string
	Car  string
}
