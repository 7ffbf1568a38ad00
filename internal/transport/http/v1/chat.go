package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// ChatMessageRequest is the body of a chat turn.
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4096"`
}

// ChatHistoryResponse wraps the session's full ordered history.
type ChatHistoryResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []domain.Message `json:"messages"`
}

// SendChatMessage appends a user turn and returns the assistant's reply.
// POST /api/v1/sessions/:session_id/chat
func (h *Handler) SendChatMessage(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message must be 1-4096 characters"})
	}

	reply, err := h.service.SendMessage(ctx, sessionID, req.Message)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, reply)
}

// GetChatHistory returns the full ordered history for a session.
// GET /api/v1/sessions/:session_id/chat
func (h *Handler) GetChatHistory(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	messages, err := h.service.GetHistory(ctx, sessionID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, ChatHistoryResponse{
		SessionID: sessionID,
		Messages:  messages,
	})
}
