// Package repository provides persistence for sessions, messages, and reports.
package repository

import (
	"context"
	"time"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// Store defines the persistence operations the service layer depends on.
// Implementations report absent rows with the domain sentinel errors; any
// other failure is a backend problem the caller maps to unavailability.
type Store interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	// DeleteSession removes the session and, by ownership, every message and
	// report scoped to it. Returns domain.ErrSessionNotFound if absent.
	DeleteSession(ctx context.Context, sessionID string) error

	// CreateMessage appends an immutable message to the session's history.
	CreateMessage(ctx context.Context, msg *domain.Message) error
	// ListMessages returns the session's messages in ascending creation
	// order. The order is total and stable across calls.
	ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error)

	// CreateReport persists a report with generated_document unset. This is
	// the durable-save phase; it commits in its own transaction.
	CreateReport(ctx context.Context, report *domain.Report) error
	GetReportBySession(ctx context.Context, sessionID string) (*domain.Report, error)
	// MarkReportGenerated sets the generated document. The write is guarded
	// so a document is only ever written while the report is still pending.
	MarkReportGenerated(ctx context.Context, reportID, document string) error
	// MarkReportFailed records that generation was attempted and failed.
	MarkReportFailed(ctx context.Context, reportID string) error

	Ping(ctx context.Context) error
	PoolStats() PoolStats
	Close() error
}

// PoolStats is a snapshot of the connection pool, exposed by the health check.
type PoolStats struct {
	OpenConnections int           `json:"open_connections"`
	InUse           int           `json:"in_use"`
	Idle            int           `json:"idle"`
	WaitCount       int64         `json:"wait_count"`
	WaitDuration    time.Duration `json:"wait_duration"`
}
