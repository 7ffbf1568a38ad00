// Package v1 contains the HTTP handlers for the public API.
package v1

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/safespace-id/safespace-backend/internal/domain"
	"github.com/safespace-id/safespace-backend/internal/service"
)

// Handler holds the service dependency for all route handlers.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session API
	e.POST("/api/v1/sessions", h.CreateSession)
	e.DELETE("/api/v1/sessions/:session_id", h.DeleteSession)

	// Chat API
	e.POST("/api/v1/sessions/:session_id/chat", h.SendChatMessage)
	e.GET("/api/v1/sessions/:session_id/chat", h.GetChatHistory)

	// Report API
	e.POST("/api/v1/sessions/:session_id/report", h.CreateReport)
	e.GET("/api/v1/sessions/:session_id/report", h.GetReport)

	e.GET("/", h.Root)
	e.GET("/health/db", h.HealthDB)
}

// Root returns a liveness banner.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "SafeSpace backend is running",
		"version": "1.0.0",
	})
}

// HealthDB checks the persistence backend and reports pool statistics.
func (h *Handler) HealthDB(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "database unreachable"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"database":        "connected",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"connection_pool": h.service.PoolStats(),
	})
}

// mapError translates the service error taxonomy to HTTP responses.
func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	case errors.Is(err, domain.ErrReportNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no report found for session"})
	case errors.Is(err, domain.ErrReportExists):
		return c.JSON(http.StatusConflict, map[string]string{"error": "a report already exists for this session"})
	case errors.Is(err, domain.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "service unavailable"})
	}

	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": valErr.Error()})
	}

	// Wrapped store/driver detail stays in the log, not the response body.
	log.Printf("ERROR: unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
