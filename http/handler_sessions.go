package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sessionStartRequest struct {
	AdminID string `json:"admin_id"`
}

type sessionStartResponse struct {
	Token string `json:"token"`
}

func (h Handler) PostSessions(c echo.Context) error {
	var request sessionStartRequest

	err := c.Bind(&request)
	if err != nil {
		return err
	}

	if request.AdminID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "admin_id is required")
	}

	token, err := h.sessions.Start(c.Request().Context(), request.AdminID)
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	return c.JSON(http.StatusCreated, sessionStartResponse{Token: token})
}

func (h Handler) DeleteSessions(c echo.Context) error {
	token := c.Get(tokenContextKey).(string)

	err := h.sessions.Revoke(c.Request().Context(), token)
	if err != nil {
		return fmt.Errorf("could not revoke session: %w", err)
	}

	return c.NoContent(http.StatusNoContent)
}
