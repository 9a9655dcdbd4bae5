package http

import (
	"errors"
	"fmt"
	"net/http"

	"courier/internal/generated/servers"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatusOf maps an error returned by a handler to an HTTP status code.
func StatusOf(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrPersistence):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler writes every error as {code, message}. Details of server-side
// failures are logged, not returned.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusOf(err)
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	switch {
	case status >= http.StatusInternalServerError:
		logger.FromContext(c.Request().Context()).Error("request failed",
			zap.Int("status", status),
			zap.Error(err),
		)
	case errors.As(err, &httpErr):
		message = fmt.Sprint(httpErr.Message)
	default:
		message = err.Error()
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, servers.Error{Code: status, Message: message})
	}
	if writeErr != nil {
		logger.FromContext(c.Request().Context()).Error("failed to write error response", zap.Error(writeErr))
	}
}
