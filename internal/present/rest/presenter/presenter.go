package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/service"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope of every /api/query and /api/mutation reply.
type Response struct {
	Status       string `json:"status"`
	Value        any    `json:"value"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// ErrUnknownFunction is returned for a function path that is not registered.
type ErrUnknownFunction struct {
	Path string
}

func (e ErrUnknownFunction) Error() string {
	return "unknown function " + e.Path
}

// OK wraps a plain successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Success wraps a function result.
func Success(c echo.Context, value any) error {
	return c.JSON(http.StatusOK, Response{Status: StatusSuccess, Value: value})
}

// Failure maps err to its status code and wraps it in the error envelope.
func Failure(c echo.Context, err error) error {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		trace.SpanFromContext(c.Request().Context()).RecordError(err)
		slog.ErrorContext(
			c.Request().Context(), "Internal error",
			slog.String("error", err.Error()),
			slog.String("module", "rest"),
		)
	} else {
		slog.DebugContext(
			c.Request().Context(), "Request rejected",
			slog.Int("code", code),
			slog.String("error", err.Error()),
			slog.String("module", "rest"),
		)
	}
	return c.JSON(code, Response{Status: StatusError, ErrorMessage: err.Error()})
}

func BadRequestMessage(c echo.Context, msg string) error {
	return Failure(c, domain.ValidationError{Reason: msg})
}

func StatusCode(err error) int {
	var unknown ErrUnknownFunction
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
