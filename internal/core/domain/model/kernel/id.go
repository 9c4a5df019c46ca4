package kernel

import (
	"fmt"
	"strconv"

	"taxi/internal/pkg/errs"
)

// ID identifies a driver, client or order. Identifiers are generated by the
// database, so the zero value means "not persisted yet" and is invalid for lookups.
type ID int64

// NewID converts a raw identifier, rejecting zero and negative values.
func NewID(param string, raw int64) (ID, error) {
	id := ID(raw)
	if err := id.validate(param); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the identifier refers to a persisted record.
func (id ID) Validate() error {
	return id.validate("id")
}

func (id ID) validate(param string) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not a positive integer", int64(id)))
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
