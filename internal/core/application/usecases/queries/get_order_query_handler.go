package queries

import (
	"context"
	"database/sql"
	"errors"

	"taxi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders with plain SQL.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(42)
//
//	o, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or errs.ObjectNotFoundError when no row matches.
// The creation time is returned in UTC.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			driver_id,
			date_created,
			status,
			address_from,
			address_to
		FROM orders
		WHERE id = ?
	`, query.OrderID().Int64()).Row()

	var o GetOrderQueryResponse
	err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.DriverID,
		&o.DateCreated,
		&o.Status,
		&o.AddressFrom,
		&o.AddressTo,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return nil, err
	}
	o.DateCreated = o.DateCreated.UTC()

	return &o, nil
}
