// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// It converts between the order aggregate and the orders table and translates
// storage errors into the errs taxonomy.
package orderrepo

import (
	"time"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// A zero DateCreated is left out of the INSERT so the column default now()
// applies; GORM reads the generated value back through RETURNING.
type OrderDTO struct {
	ID          int64     `gorm:"primaryKey"`
	ClientID    int64     `gorm:"not null;index"`
	DriverID    int64     `gorm:"not null;index"`
	DateCreated time.Time `gorm:"type:timestamptz;not null;default:now()"`
	Status      string    `gorm:"size:20;not null"`
	AddressFrom string    `gorm:"size:50;not null"`
	AddressTo   string    `gorm:"size:50;not null"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Int64(),
		ClientID:    o.ClientID().Int64(),
		DriverID:    o.DriverID().Int64(),
		DateCreated: o.DateCreated(),
		Status:      o.Status().String(),
		AddressFrom: o.AddressFrom(),
		AddressTo:   o.AddressTo(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Times are normalised to UTC.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(kernel.ID(dto.ID), order.Fields{
		ClientID:    kernel.ID(dto.ClientID),
		DriverID:    kernel.ID(dto.DriverID),
		DateCreated: dto.DateCreated.UTC(),
		Status:      order.Status(dto.Status),
		AddressFrom: dto.AddressFrom,
		AddressTo:   dto.AddressTo,
	})
}
