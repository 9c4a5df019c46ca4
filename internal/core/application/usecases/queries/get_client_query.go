package queries

import (
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/guard"
)

var (
	ErrGetClientQueryIsNotConstructed = errors.New(
		"GetClientQuery must be created via NewGetClientQuery constructor",
	)
)

// GetClientQuery retrieves a single client by identifier.
type GetClientQuery struct {
	clientID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetClientQuery(clientID int64) (GetClientQuery, error) {
	id, err := kernel.NewID("client_id", clientID)
	if err != nil {
		return GetClientQuery{}, err
	}

	return GetClientQuery{
		clientID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

func (q GetClientQuery) ClientID() kernel.ID {
	return q.clientID
}

type GetClientQueryResponse struct {
	ID    int64
	Name  string
	IsVIP bool
}
