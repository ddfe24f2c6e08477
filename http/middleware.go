package http

import (
	"errors"
	"net/http"
	"strings"

	"boxoffice/session"

	"github.com/labstack/echo/v4"
)

const (
	tokenContextKey = "session_token"
	adminContextKey = "admin_id"
)

// requireSession resolves the bearer token against the session store and
// puts the token and admin id on the request context. Requests without a
// live session never reach the handler.
func (h Handler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		token := strings.TrimPrefix(auth, "Bearer ")
		if token == "" || token == auth {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		adminID, err := h.sessions.Validate(c.Request().Context(), token)
		if errors.Is(err, session.ErrAuthExpired) {
			return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
		}
		if err != nil {
			return err
		}

		c.Set(tokenContextKey, token)
		c.Set(adminContextKey, adminID)

		return next(c)
	}
}
