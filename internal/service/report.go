package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/safespace-id/safespace-backend/internal/domain"
	"github.com/safespace-id/safespace-backend/internal/retry"
)

// SubmitReport runs the two-phase report pipeline.
//
// Phase 1 durably saves the structured fields before generation is attempted;
// once it commits, that data survives any later failure. Phase 2 asks the
// collaborator for the narrative through the retry executor and records the
// outcome in its own write. No transaction ever spans the external call.
func (s *Service) SubmitReport(ctx context.Context, sessionID string, input domain.ReportInput) (*domain.Report, error) {
	// Closed-set check before anything is persisted.
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return nil, storeErr(err)
	}

	report := &domain.Report{
		ReportID:    uuid.NewString(),
		SessionID:   sessionID,
		Location:    input.Location,
		Perpetrator: input.Perpetrator,
		Description: input.Description,
		Evidence:    input.Evidence,
		UserGoal:    input.UserGoal,
		Status:      domain.ReportStatusPendingGeneration,
		CreatedAt:   time.Now().UTC(),
	}

	// Phase 1: durable save.
	if err := s.store.CreateReport(ctx, report); err != nil {
		return nil, storeErr(err)
	}
	log.Printf("report %s created for session %s, generating narrative", report.ReportID, sessionID)

	// Phase 2: generation.
	var narrative string
	genErr := retry.Do(ctx, s.generationRetryConfig(), func(ctx context.Context) error {
		var err error
		narrative, err = s.generator.GenerateNarrative(ctx, input)
		return err
	})
	if genErr != nil {
		// The Phase-1 row stands. Record the failed attempt even if the
		// client has disconnected.
		if err := s.store.MarkReportFailed(context.WithoutCancel(ctx), report.ReportID); err != nil {
			log.Printf("ERROR: failed to mark report %s failed: %v", report.ReportID, err)
		} else {
			report.Status = domain.ReportStatusGenerationFailed
		}
		log.Printf("ERROR: narrative generation failed for report %s: %v", report.ReportID, genErr)
		return nil, &domain.GenerationError{Report: report, Err: genErr}
	}

	if err := s.store.MarkReportGenerated(context.WithoutCancel(ctx), report.ReportID, narrative); err != nil {
		return nil, storeErr(err)
	}
	report.GeneratedDocument = &narrative
	report.Status = domain.ReportStatusGenerated
	log.Printf("report %s narrative generated (%d chars)", report.ReportID, len(narrative))
	return report, nil
}

// GetReport returns the session's report, if one was ever submitted.
func (s *Service) GetReport(ctx context.Context, sessionID string) (*domain.Report, error) {
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return nil, storeErr(err)
	}
	report, err := s.store.GetReportBySession(ctx, sessionID)
	if err != nil {
		return nil, storeErr(err)
	}
	return report, nil
}
