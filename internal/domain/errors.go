package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound means the referenced session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrReportNotFound means the session has no report yet.
	ErrReportNotFound = errors.New("report not found")

	// ErrReportExists means the session already has a report. Reports are
	// write-once per session.
	ErrReportExists = errors.New("report already exists for session")

	// ErrUnavailable means the persistence backend could not serve the
	// operation. Nothing was written; the whole operation is safe to retry.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrNotConfigured means the generation collaborator credential is
	// missing. Affected operations degrade at call time instead of failing
	// startup.
	ErrNotConfigured = errors.New("generation client not configured")
)

// ValidationError reports a categorical field outside its closed set. It is
// raised before any persistence occurs.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

// GenerationError means narrative generation failed after retries were
// exhausted. The report from the durable-save phase is preserved and carried
// here so callers can tell the user their data was not lost.
type GenerationError struct {
	Report *Report
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("narrative generation failed (report %s preserved): %v", e.Report.ReportID, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
