package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// ReportRequest carries the five structured incident fields. Each field is
// checked against its closed set before anything is persisted.
type ReportRequest struct {
	Location    string `json:"location" validate:"required,oneof='public space' online kampus sekolah workplace"`
	Perpetrator string `json:"perpetrator" validate:"required,oneof=supervisor colleague lecturer client stranger"`
	Description string `json:"description" validate:"required,oneof='inappropriate comments' 'unwanted physical touch' 'repeated pressure' 'threat or coercion' 'digital harassment'"`
	Evidence    string `json:"evidence" validate:"required,oneof=messages emails witness none"`
	UserGoal    string `json:"user_goal" validate:"required,oneof='understand the risk' 'document safely' 'consider reporting' 'explore options'"`
}

// CreateReport accepts structured incident data, durably saves it, and
// generates the complaint-form narrative.
// POST /api/v1/sessions/:session_id/report
func (h *Handler) CreateReport(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req ReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	input := domain.ReportInput{
		Location:    domain.Location(req.Location),
		Perpetrator: domain.Perpetrator(req.Perpetrator),
		Description: domain.IncidentType(req.Description),
		Evidence:    domain.Evidence(req.Evidence),
		UserGoal:    domain.UserGoal(req.UserGoal),
	}

	report, err := h.service.SubmitReport(ctx, sessionID, input)
	if err != nil {
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			// The structured data survived Phase 1; tell the caller so.
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"error":          "report created but narrative generation failed",
				"data_preserved": true,
				"report":         genErr.Report,
			})
		}
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, report)
}

// GetReport retrieves the report for a session.
// GET /api/v1/sessions/:session_id/report
func (h *Handler) GetReport(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	report, err := h.service.GetReport(ctx, sessionID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
