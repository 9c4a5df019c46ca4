package order

import (
	"fmt"

	"taxi/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	not_accepted ──> in_progress ──> done
//	      │               │
//	      └───────────────┴────────> cancelled
//
// done and cancelled are terminal. The diagram shows the usual flow; the exact
// set of allowed updates is decided by EvaluateTransition.
type Status string

const (
	// Unknown is the zero value and never valid.
	Unknown Status = ""

	// NotAccepted is the default status of a new order.
	NotAccepted Status = "not_accepted"

	// InProgress means a driver has accepted the order.
	InProgress Status = "in_progress"

	// Done means the ride is finished. Terminal.
	Done Status = "done"

	// Cancelled means the order was called off. Terminal.
	Cancelled Status = "cancelled"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{NotAccepted, InProgress, Done, Cancelled}
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

func (s Status) Validate() error {
	switch s {
	case NotAccepted, InProgress, Done, Cancelled:
		return nil
	case Unknown:
		return errs.NewValueIsRequiredError("status")
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// IsTerminal reports whether no further modification is allowed.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancelled
}

func (s Status) String() string {
	if s == Unknown {
		return "unknown"
	}
	return string(s)
}
