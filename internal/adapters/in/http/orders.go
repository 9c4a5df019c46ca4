package http

import (
	"net/http"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders. Without date_created the database stamps
// the order with the current time.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		body.ClientID,
		body.DriverID,
		body.dateCreated(),
		body.Status,
		body.AddressFrom,
		body.AddressTo,
	)
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, orderFromDomain(o))
}

// GetOrder handles GET /orders?order_id=.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(boundID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromQuery(o))
}

// UpdateOrder handles PUT /orders/{id}: a full replacement checked against the
// status transition rules. A rejected transition is a 400 carrying the reason.
func (s *Server) UpdateOrder(c echo.Context) error {
	var body OrderUpdate
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		boundID(c),
		body.ClientID,
		body.DriverID,
		body.DateCreated,
		body.Status,
		body.AddressFrom,
		body.AddressTo,
	)
	if err != nil {
		return s.respondError(c, err)
	}

	o, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(o))
}
