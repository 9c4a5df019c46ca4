package commands

import (
	"errors"
	"time"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
// A zero dateCreated lets storage stamp the order with the current time.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(1, 3, time.Time{}, "not_accepted", "Moscow", "Saint-Petersburg")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	fields order.Fields

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	clientID, driverID int64,
	dateCreated time.Time,
	status, addressFrom, addressTo string,
) (CreateOrderCommand, error) {
	fields, err := parseOrderFields(clientID, driverID, dateCreated, status, addressFrom, addressTo)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Fields() order.Fields {
	return c.fields
}

func parseOrderFields(
	clientID, driverID int64,
	dateCreated time.Time,
	status, addressFrom, addressTo string,
) (order.Fields, error) {
	cID, clientErr := kernel.NewID("client_id", clientID)
	dID, driverErr := kernel.NewID("driver_id", driverID)
	st, statusErr := order.ParseStatus(status)

	if err := errors.Join(
		clientErr,
		driverErr,
		statusErr,
		kernel.ValidateText("address_from", addressFrom, kernel.AddressMaxLength),
		kernel.ValidateText("address_to", addressTo, kernel.AddressMaxLength),
	); err != nil {
		return order.Fields{}, err
	}

	return order.Fields{
		ClientID:    cID,
		DriverID:    dID,
		DateCreated: dateCreated,
		Status:      st,
		AddressFrom: addressFrom,
		AddressTo:   addressTo,
	}, nil
}
