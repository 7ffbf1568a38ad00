package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateSession creates a new anonymous session.
// POST /api/v1/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	session, err := h.service.CreateSession(ctx)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}

// DeleteSession permanently deletes a session and all data scoped to it.
// DELETE /api/v1/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	if err := h.service.DeleteSession(ctx, sessionID); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
