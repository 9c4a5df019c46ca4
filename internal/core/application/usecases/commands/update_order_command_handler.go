package commands

import (
	"context"

	"taxi/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies full-replacement updates to orders under
// the status rules of order.EvaluateTransition.
//
// Example:
//
//	cmd, _ := NewUpdateOrderCommand(42, 1, 2, createdAt, "done", "A", "B")
//	o, err := handler.Handle(ctx, cmd)
//	var rejected *errs.TransitionIsRejectedError
//	if errors.As(err, &rejected) {
//	    // respond 400 with rejected.Reason()
//	}
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reads the order, evaluates the transition and, when accepted, writes
// all six fields within one transaction. A rejected transition returns
// errs.TransitionIsRejectedError and nothing is written.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Update(cmd.Fields()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
