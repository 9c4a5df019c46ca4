package http

import (
	"net/http"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateClient handles POST /clients.
func (s *Server) CreateClient(c echo.Context) error {
	var body NewClient
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(body.Name, body.IsVIP)
	if err != nil {
		return s.respondError(c, err)
	}

	created, err := s.handlers.CreateClient.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, clientFromDomain(created))
}

// GetClient handles GET /clients?client_id=.
func (s *Server) GetClient(c echo.Context) error {
	query, err := queries.NewGetClientQuery(boundID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	found, err := s.handlers.GetClient.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, clientFromQuery(found))
}

// DeleteClient handles DELETE /clients/{id}.
func (s *Server) DeleteClient(c echo.Context) error {
	cmd, err := commands.NewDeleteClientCommand(boundID(c))
	if err != nil {
		return s.respondError(c, err)
	}

	deleted, err := s.handlers.DeleteClient.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, clientFromDomain(deleted))
}
