package commands

import (
	"context"

	"taxi/internal/core/domain/model/client"
)

// DeleteClientCommandHandler removes clients.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the client and returns the record as it was before deletion.
func (h DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) (*client.Client, error) {
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

	repo := uow.ClientRepository()
	c, err := repo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if err = repo.Delete(ctx, c.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
