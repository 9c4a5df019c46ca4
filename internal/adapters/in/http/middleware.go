package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"taxi/internal/pkg/logger"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

const idContextKey = "id"

// ValidateBody rejects requests whose JSON body does not conform to s.
// A conforming body is put back untouched for the handler to bind.
func ValidateBody(s *openapi3.Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return badRequest(c, "cannot read request body")
			}

			var body any
			if err = json.Unmarshal(raw, &body); err != nil {
				return badRequest(c, "request body is not valid JSON")
			}

			if err = s.VisitJSON(body, openapi3.MultiErrors()); err != nil {
				return badRequest(c, fmt.Sprintf("request body does not match schema: %v", err))
			}

			c.Request().Body = io.NopCloser(bytes.NewReader(raw))
			return next(c)
		}
	}
}

// QueryID binds the required positive integer query parameter name.
func QueryID(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id int64
			if err := runtime.BindQueryParameter("form", true, true, name, c.QueryParams(), &id); err != nil {
				return badRequest(c, fmt.Sprintf("invalid %s: %v", name, err))
			}
			return withID(c, next, name, id)
		}
	}
}

// PathID binds the positive integer path parameter name.
func PathID(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id int64
			err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
				runtime.BindStyledParameterOptions{
					ParamLocation: runtime.ParamLocationPath,
					Explode:       false,
					Required:      true,
				})
			if err != nil {
				return badRequest(c, fmt.Sprintf("invalid %s: %v", name, err))
			}
			return withID(c, next, name, id)
		}
	}
}

func withID(c echo.Context, next echo.HandlerFunc, name string, id int64) error {
	if id <= 0 {
		return badRequest(c, fmt.Sprintf("invalid %s: must be a positive integer", name))
	}
	c.Set(idContextKey, id)
	return next(c)
}

// boundID returns the identifier stored by QueryID or PathID.
func boundID(c echo.Context) int64 {
	id, _ := c.Get(idContextKey).(int64)
	return id
}

// RequestLogger writes one line per request.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []logger.Field{
				logger.String("method", v.Method),
				logger.String("uri", v.URI),
				logger.Int64("status", int64(v.Status)),
				logger.Duration("latency", v.Latency.Round(time.Microsecond)),
				logger.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, logger.Error(v.Error))
			}

			if v.Status >= http.StatusInternalServerError {
				log.Error("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
