// Package guard provides ConstructorGuard, a marker that lets value types detect
// whether they were built through their constructor or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero value
// and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries so that a zero-value
// struct literal fails validation instead of reaching a handler.
//
// Example usage:
//
//	var ErrGetDriverQueryIsNotConstructed = errors.New("GetDriverQuery must be created via NewGetDriverQuery")
//
//	type GetDriverQuery struct {
//	    driverID int64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (q GetDriverQuery) Validate() error {
//	    return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
