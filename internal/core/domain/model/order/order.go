package order

import (
	"errors"
	"time"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is a taxi ride request from a client served by a driver.
//
// Order follows these invariants:
//   - client and driver references are positive identifiers
//   - status is one of the four Status values
//   - both addresses are non-empty and at most kernel.AddressMaxLength characters
//   - once done or cancelled, no field changes
//
// A new order may have a zero creation time, meaning storage assigns the
// current time on insert.
type Order struct {
	id          kernel.ID
	clientID    kernel.ID
	driverID    kernel.ID
	dateCreated time.Time
	status      Status
	addressFrom string
	addressTo   string

	isConstructed bool
}

// NewOrder creates an order that has not been persisted yet.
func NewOrder(fields Fields) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := o.set(fields); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order from storage.
func RestoreOrder(id kernel.ID, fields Fields) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		requireDateCreated(fields.DateCreated),
	); err != nil {
		return nil, err
	}

	o, err := NewOrder(fields)
	if err != nil {
		return nil, err
	}
	o.id = id

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) ClientID() kernel.ID {
	return o.clientID
}

func (o *Order) DriverID() kernel.ID {
	return o.driverID
}

func (o *Order) DateCreated() time.Time {
	return o.dateCreated
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) AddressFrom() string {
	return o.addressFrom
}

func (o *Order) AddressTo() string {
	return o.addressTo
}

// Snapshot returns the state EvaluateTransition compares an update against.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		Status:      o.status,
		ClientID:    o.clientID,
		DriverID:    o.driverID,
		DateCreated: o.dateCreated,
	}
}

// Fields returns the six mutable attributes.
func (o *Order) Fields() Fields {
	return Fields{
		ClientID:    o.clientID,
		DriverID:    o.driverID,
		DateCreated: o.dateCreated,
		Status:      o.status,
		AddressFrom: o.addressFrom,
		AddressTo:   o.addressTo,
	}
}

// Update replaces all mutable fields with requested if the status rules allow it.
// The order is left untouched when requested is malformed or the transition is
// rejected; a rejection is reported as *errs.TransitionIsRejectedError.
func (o *Order) Update(requested Fields) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		validateFields(requested),
		requireDateCreated(requested.DateCreated),
	); err != nil {
		return err
	}

	outcome := EvaluateTransition(o.Snapshot(), requested)
	if err := outcome.Err(); err != nil {
		return err
	}

	return o.set(outcome.Values())
}

func (o *Order) set(fields Fields) error {
	if err := validateFields(fields); err != nil {
		return err
	}

	o.clientID = fields.ClientID
	o.driverID = fields.DriverID
	o.dateCreated = fields.DateCreated
	o.status = fields.Status
	o.addressFrom = fields.AddressFrom
	o.addressTo = fields.AddressTo
	return nil
}

func validateFields(fields Fields) error {
	return errors.Join(
		validateReference("client_id", fields.ClientID),
		validateReference("driver_id", fields.DriverID),
		fields.Status.Validate(),
		kernel.ValidateText("address_from", fields.AddressFrom, kernel.AddressMaxLength),
		kernel.ValidateText("address_to", fields.AddressTo, kernel.AddressMaxLength),
	)
}

func validateReference(param string, id kernel.ID) error {
	_, err := kernel.NewID(param, id.Int64())
	return err
}

func requireDateCreated(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("date_created")
	}
	return nil
}
