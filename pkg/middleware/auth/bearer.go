package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/salon_pos/pkg/logging"
	"github.com/Skotchmaster/salon_pos/pkg/tokens"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

type BearerAuth struct {
	Tokens *tokens.Manager
}

func NewBearerAuth(m *tokens.Manager) *BearerAuth {
	return &BearerAuth{Tokens: m}
}

func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("middleware", "bearer_auth")

		claims, err := m.Tokens.Verify(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, tokens.ErrMissingToken) {
				l.Warn("auth_failed", "status", 401, "reason", "missing token")
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			l.Warn("auth_failed", "status", 401, "reason", "invalid token", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)

		return next(c)
	}
}
