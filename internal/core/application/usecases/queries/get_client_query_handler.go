package queries

import (
	"context"
	"database/sql"
	"errors"

	"taxi/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetClientQueryHandler struct {
	db *gorm.DB
}

func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (*GetClientQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			is_vip
		FROM clients
		WHERE id = ?
	`, query.ClientID().Int64()).Row()

	var client GetClientQueryResponse
	if err := row.Scan(&client.ID, &client.Name, &client.IsVIP); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("client", query.ClientID())
		}
		return nil, err
	}

	return &client, nil
}
