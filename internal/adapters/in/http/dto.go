package http

import (
	"time"

	"taxi/internal/core/application/usecases/queries"
	"taxi/internal/core/domain/model/client"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/order"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewDriver struct {
	Name string `json:"name"`
	Car  string `json:"car"`
}

type Driver struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Car  string `json:"car"`
}

type NewClient struct {
	Name  string `json:"name"`
	IsVIP bool   `json:"is_vip"`
}

type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	IsVIP bool   `json:"is_vip"`
}

// NewOrder is the create body. DateCreated is optional.
type NewOrder struct {
	ClientID    int64      `json:"client_id"`
	DriverID    int64      `json:"driver_id"`
	DateCreated *time.Time `json:"date_created"`
	Status      string     `json:"status"`
	AddressFrom string     `json:"address_from"`
	AddressTo   string     `json:"address_to"`
}

// OrderUpdate is the full replacement body of PUT /orders/{id}.
type OrderUpdate struct {
	ClientID    int64     `json:"client_id"`
	DriverID    int64     `json:"driver_id"`
	DateCreated time.Time `json:"date_created"`
	Status      string    `json:"status"`
	AddressFrom string    `json:"address_from"`
	AddressTo   string    `json:"address_to"`
}

type Order struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	DriverID    int64     `json:"driver_id"`
	DateCreated time.Time `json:"date_created"`
	Status      string    `json:"status"`
	AddressFrom string    `json:"address_from"`
	AddressTo   string    `json:"address_to"`
}

func (o NewOrder) dateCreated() time.Time {
	if o.DateCreated == nil {
		return time.Time{}
	}
	return *o.DateCreated
}

func driverFromDomain(d *driver.Driver) Driver {
	return Driver{
		ID:   d.ID().Int64(),
		Name: d.Name(),
		Car:  d.Car(),
	}
}

func driverFromQuery(r *queries.GetDriverQueryResponse) Driver {
	return Driver{
		ID:   r.ID,
		Name: r.Name,
		Car:  r.Car,
	}
}

func clientFromDomain(c *client.Client) Client {
	return Client{
		ID:    c.ID().Int64(),
		Name:  c.Name(),
		IsVIP: c.IsVIP(),
	}
}

func clientFromQuery(r *queries.GetClientQueryResponse) Client {
	return Client{
		ID:    r.ID,
		Name:  r.Name,
		IsVIP: r.IsVIP,
	}
}

func orderFromDomain(o *order.Order) Order {
	return Order{
		ID:          o.ID().Int64(),
		ClientID:    o.ClientID().Int64(),
		DriverID:    o.DriverID().Int64(),
		DateCreated: o.DateCreated().UTC(),
		Status:      o.Status().String(),
		AddressFrom: o.AddressFrom(),
		AddressTo:   o.AddressTo(),
	}
}

func orderFromQuery(r *queries.GetOrderQueryResponse) Order {
	return Order{
		ID:          r.ID,
		ClientID:    r.ClientID,
		DriverID:    r.DriverID,
		DateCreated: r.DateCreated.UTC(),
		Status:      r.Status,
		AddressFrom: r.AddressFrom,
		AddressTo:   r.AddressTo,
	}
}
