package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/salon_pos/internal/service"
	"github.com/Skotchmaster/salon_pos/internal/transport"
	"github.com/Skotchmaster/salon_pos/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(l, "login_error", err)
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return serviceError(l, "login_error", err, "username & password required")
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{Token: token})
}
