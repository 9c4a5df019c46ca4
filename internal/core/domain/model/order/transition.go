package order

import (
	"errors"
	"time"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"
)

// Rejection reasons returned by EvaluateTransition.
var (
	ErrOrderIsFinal = errors.New(
		"cannot modify an order with a completed or cancelled status")
	ErrInProgressToNotAccepted = errors.New(
		"cannot move an in-progress order back to not-accepted")
	ErrInProgressDetailsChanged = errors.New(
		"cannot change identifying details of an in-progress order")
	ErrNotAcceptedToDone = errors.New(
		"cannot move directly from not-accepted to done")
)

// Snapshot is the persisted state of an order read at the start of an update.
type Snapshot struct {
	Status      Status
	ClientID    kernel.ID
	DriverID    kernel.ID
	DateCreated time.Time
}

// Fields holds the six mutable order attributes. An update always carries all
// of them; there is no partial patch.
type Fields struct {
	ClientID    kernel.ID
	DriverID    kernel.ID
	DateCreated time.Time
	Status      Status
	AddressFrom string
	AddressTo   string
}

// Outcome is the result of EvaluateTransition: either accepted with the values
// to persist, or rejected with a reason.
type Outcome struct {
	values    Fields
	rejection *errs.TransitionIsRejectedError
}

// Accepted builds an outcome that persists values.
func Accepted(values Fields) Outcome {
	return Outcome{values: values}
}

// Rejected builds an outcome that refuses the move from one status to another.
func Rejected(from, to Status, reason error) Outcome {
	return Outcome{
		rejection: errs.NewTransitionIsRejectedErrorWithCause(from.String(), to.String(), reason),
	}
}

func (o Outcome) IsAccepted() bool {
	return o.rejection == nil
}

// Values returns the fields to persist. It is the zero Fields for a rejection.
func (o Outcome) Values() Fields {
	return o.values
}

// Err returns nil for an accepted outcome and a *errs.TransitionIsRejectedError otherwise.
func (o Outcome) Err() error {
	if o.rejection == nil {
		return nil
	}
	return o.rejection
}

// EvaluateTransition decides whether requested may replace the order described
// by current. It never fails: every input yields either Accepted or Rejected.
//
// Rule 3 rejects only when client, driver and creation time all differ at the
// same time. Changing one or two of them is allowed for an in-progress order.
func EvaluateTransition(current Snapshot, requested Fields) Outcome {
	switch {
	case current.Status.IsTerminal():
		return Rejected(current.Status, requested.Status, ErrOrderIsFinal)

	case current.Status == InProgress && requested.Status == NotAccepted:
		return Rejected(current.Status, requested.Status, ErrInProgressToNotAccepted)

	case current.Status == InProgress &&
		current.ClientID != requested.ClientID &&
		current.DriverID != requested.DriverID &&
		!sameInstant(current.DateCreated, requested.DateCreated):
		return Rejected(current.Status, requested.Status, ErrInProgressDetailsChanged)

	case current.Status == NotAccepted && requested.Status == Done:
		return Rejected(current.Status, requested.Status, ErrNotAcceptedToDone)
	}

	return Accepted(requested)
}

// sameInstant compares at the microsecond precision of the timestamptz column,
// so a value read back from storage equals the one that was written.
func sameInstant(a, b time.Time) bool {
	return a.Truncate(time.Microsecond).Equal(b.Truncate(time.Microsecond))
}
