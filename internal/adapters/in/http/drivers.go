package http

import (
	"net/http"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateDriver handles POST /drivers.
func (s *Server) CreateDriver(c echo.Context) error {
	var body NewDriver
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, body.Car)
	if err != nil {
		return s.respondError(c, err)
	}

	d, err := s.handlers.CreateDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, driverFromDomain(d))
}

// GetDriver handles GET /drivers?driver_id=.
func (s *Server) GetDriver(c echo.Context) error {
	query, err := queries.NewGetDriverQuery(boundID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	d, err := s.handlers.GetDriver.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, driverFromQuery(d))
}

// DeleteDriver handles DELETE /drivers/{id}. The response is the record as it
// was before deletion.
func (s *Server) DeleteDriver(c echo.Context) error {
	cmd, err := commands.NewDeleteDriverCommand(boundID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	d, err := s.handlers.DeleteDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, driverFromDomain(d))
}
