// Package http exposes the dispatch use cases over REST using echo.
//
// Request bodies are checked against the embedded OpenAPI document before a
// handler runs, identifiers are bound by QueryID or PathID, and every error is
// rendered as {"code", "message"}.
package http

import (
	"context"
	"net/http"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/application/usecases/queries"
	"taxi/internal/core/domain/model/client"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/order"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type (
	CreateDriverHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDriverCommand) (*driver.Driver, error)
	}
	DeleteDriverHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteDriverCommand) (*driver.Driver, error)
	}
	GetDriverHandler interface {
		Handle(ctx context.Context, query queries.GetDriverQuery) (*queries.GetDriverQueryResponse, error)
	}

	CreateClientHandler interface {
		Handle(ctx context.Context, cmd commands.CreateClientCommand) (*client.Client, error)
	}
	DeleteClientHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteClientCommand) (*client.Client, error)
	}
	GetClientHandler interface {
		Handle(ctx context.Context, query queries.GetClientQuery) (*queries.GetClientQueryResponse, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}

	// HealthReporter returns the result of the latest database probe.
	HealthReporter interface {
		Err() error
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateDriver CreateDriverHandler
	DeleteDriver DeleteDriverHandler
	GetDriver    GetDriverHandler

	CreateClient CreateClientHandler
	DeleteClient DeleteClientHandler
	GetClient    GetClientHandler

	CreateOrder CreateOrderHandler
	UpdateOrder UpdateOrderHandler
	GetOrder    GetOrderHandler

	Health HealthReporter
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	doc      *openapi3.T
	logger   *zap.Logger
}

func NewServer(handlers Handlers, doc *openapi3.T, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		doc:      doc,
		logger:   logger,
	}
}

// NewEcho builds an echo instance with recovery, request ids and request
// logging, and the Server's routes registered.
func NewEcho(s *Server, logLevel string) (*echo.Echo, error) {
	if err := registerSwagger(s.doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(logLevel))
	e.HTTPErrorHandler = httpErrorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(s.logger))

	s.Register(e)
	return e, nil
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/drivers", s.CreateDriver, ValidateBody(schema(s.doc, "NewDriver")))
	e.GET("/drivers", s.GetDriver, QueryID("driver_id"))
	e.DELETE("/drivers/:id", s.DeleteDriver, PathID("id"))

	e.POST("/clients", s.CreateClient, ValidateBody(schema(s.doc, "NewClient")))
	e.GET("/clients", s.GetClient, QueryID("client_id"))
	e.DELETE("/clients/:id", s.DeleteClient, PathID("id"))

	e.POST("/orders", s.CreateOrder, ValidateBody(schema(s.doc, "NewOrder")))
	e.GET("/orders", s.GetOrder, QueryID("order_id"))
	e.PUT("/orders/:id", s.UpdateOrder, PathID("id"), ValidateBody(schema(s.doc, "OrderUpdate")))

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	if err := s.handlers.Health.Err(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	}
	return c.String(http.StatusOK, "Healthy")
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
