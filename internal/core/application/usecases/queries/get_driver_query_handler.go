package queries

import (
	"context"
	"database/sql"
	"errors"

	"taxi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverQueryHandler reads drivers with plain SQL.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle returns the driver or errs.ObjectNotFoundError when no row matches.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (*GetDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			car
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Int64()).Row()

	var driver GetDriverQueryResponse
	if err := row.Scan(&driver.ID, &driver.Name, &driver.Car); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("driver", query.DriverID())
		}
		return nil, err
	}

	return &driver, nil
}
