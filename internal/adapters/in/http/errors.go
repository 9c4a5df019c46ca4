package http

import (
	"errors"
	"fmt"
	"net/http"

	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps err onto the HTTP error taxonomy:
// validation 400, rejected transition 400 with its reason, not found 404,
// anything else 500.
func (s *Server) respondError(c echo.Context, err error) error {
	var (
		rejected *errs.TransitionIsRejectedError
		notFound *errs.ObjectNotFoundError
	)

	switch {
	case errors.As(err, &rejected):
		return badRequest(c, rejected.Reason())

	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("%s %v not found", notFound.ParamName, notFound.ID),
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(c, err.Error())
	}

	s.logger.Error("request failed",
		logger.String("method", c.Request().Method),
		logger.String("uri", c.Request().RequestURI),
		logger.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// httpErrorHandler renders echo's own errors (unknown route, wrong method,
// recovered panics) in the Error shape.
func httpErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			log.Error("unhandled error", logger.Error(err))
		}

		if writeErr := c.JSON(code, Error{Code: code, Message: message}); writeErr != nil {
			log.Error("write error response", logger.Error(writeErr))
		}
	}
}
