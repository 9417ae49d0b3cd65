package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps an error kind to its response status.
func statusOf(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrStateIsInvalid),
		errs.IsInvalidInput(err),
		errors.Is(err, payment.ErrNoFailedAttempt):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Internal failures are logged and answered with a
// generic message so storage details never leak to callers.
func (s *Server) writeError(c echo.Context, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(code, Error{Code: code, Message: http.StatusText(code)})
	}

	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	return c.JSON(code, Error{Code: code, Message: message})
}

func badRequest(message string, cause error) error {
	return echo.NewHTTPError(http.StatusBadRequest, message).SetInternal(cause)
}
