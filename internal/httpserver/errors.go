package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/salon_pos/internal/service"
	"github.com/Skotchmaster/salon_pos/internal/transport"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

const serverErrorMsg = "Server error"

// ErrorHandler renders every error as {"error": "..."}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := serverErrorMsg

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case nil:
			msg = http.StatusText(code)
		default:
			msg = fmt.Sprint(m)
		}
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, transport.ErrorResponse{Error: msg})
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", werr)
	}
}

// serviceError turns a service error into an HTTP error and logs it.
// validationMsg is used for validation errors without a more specific message.
func serviceError(l *slog.Logger, event string, err error, validationMsg string) error {
	var code int
	var msg string

	switch {
	case errors.Is(err, service.ErrInsufficientStock):
		code, msg = http.StatusBadRequest, "Not enough stock"
	case errors.Is(err, service.ErrProductNotFound):
		code, msg = http.StatusNotFound, "Product not found"
	case errors.Is(err, service.ErrServiceNotFound):
		code, msg = http.StatusNotFound, "Service not found"
	case errors.Is(err, service.ErrInvalidTType):
		code, msg = http.StatusBadRequest, "t_type must be DR or CR"
	case errors.Is(err, service.ErrInvalidDate):
		code, msg = http.StatusBadRequest, "invalid date, expected YYYY-MM-DD"
	case errors.Is(err, service.ErrInvalidStock):
		code, msg = http.StatusBadRequest, "stock must be a whole number"
	case errors.Is(err, service.ErrValidation):
		code, msg = http.StatusBadRequest, validationMsg
	case errors.Is(err, service.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, service.ErrNotFound):
		code, msg = http.StatusNotFound, "not found"
	default:
		l.Error(event, "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, serverErrorMsg).SetInternal(err)
	}

	l.Warn(event, "status", code, "reason", msg, "error", err)
	return echo.NewHTTPError(code, msg).SetInternal(err)
}

func bindError(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", 400, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id %q is not a positive integer", c.Param("id"))
	}
	return uint(id), nil
}
