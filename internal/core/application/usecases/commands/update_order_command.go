package commands

import (
	"errors"
	"time"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand carries a full replacement of an order's six mutable
// fields. Every field is required, including the creation time.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	fields  order.Fields

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID, clientID, driverID int64,
	dateCreated time.Time,
	status, addressFrom, addressTo string,
) (UpdateOrderCommand, error) {
	id, idErr := kernel.NewID("order_id", orderID)
	fields, fieldsErr := parseOrderFields(clientID, driverID, dateCreated, status, addressFrom, addressTo)

	var dateErr error
	if dateCreated.IsZero() {
		dateErr = errs.NewValueIsRequiredError("date_created")
	}

	if err := errors.Join(idErr, fieldsErr, dateErr); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: id,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderCommand) Fields() order.Fields {
	return c.fields
}
