package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// Options tunes the connection pool. The pool is sized independently of
// request concurrency.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewSQLiteStore opens the database, applies pool settings, and runs
// migrations.
func NewSQLiteStore(dsn string, opts Options) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", withConnParams(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
		if opts.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(opts.ConnMaxLifetime)
		}
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// withConnParams appends driver parameters that must hold on every pooled
// connection. A PRAGMA issued through db.Exec only reaches the one connection
// that happens to run it, so foreign-key enforcement (session deletion
// cascades to messages and reports) and the busy timeout are set through the
// DSN instead.
func withConnParams(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			message_id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS reports (
			report_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL UNIQUE,
			location TEXT NOT NULL,
			perpetrator TEXT NOT NULL,
			description TEXT NOT NULL,
			evidence TEXT NOT NULL,
			user_goal TEXT NOT NULL,
			generated_document TEXT,
			status TEXT NOT NULL DEFAULT 'pending_generation',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection, used by startup and health checks.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// PoolStats returns a snapshot of the connection pool.
func (s *SQLiteStore) PoolStats() PoolStats {
	st := s.db.Stats()
	return PoolStats{
		OpenConnections: st.OpenConnections,
		InUse:           st.InUse,
		Idle:            st.Idle,
		WaitCount:       st.WaitCount,
		WaitDuration:    st.WaitDuration,
	}
}

// CreateSession creates a new session.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, created_at) VALUES (?, ?)`,
		session.SessionID, session.CreatedAt)
	return err
}

// GetSession retrieves a session by ID.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, created_at FROM sessions WHERE session_id = ?`,
		sessionID).Scan(&session.SessionID, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session; messages and reports cascade with it.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// CreateMessage appends a message. The AUTOINCREMENT seq gives the row a
// stable position even when timestamps collide.
func (s *SQLiteStore) CreateMessage(ctx context.Context, msg *domain.Message) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (message_id, session_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.MessageID, msg.SessionID, msg.Role, msg.Content, msg.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSessionNotFound
		}
		return fmt.Errorf("failed to create message: %w", err)
	}
	if seq, err := res.LastInsertId(); err == nil {
		msg.Seq = seq
	}
	return nil
}

// ListMessages returns the session's messages in ascending creation order.
func (s *SQLiteStore) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, message_id, session_id, role, content, created_at
		 FROM messages WHERE session_id = ? ORDER BY created_at ASC, seq ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0, 16)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.Seq, &m.MessageID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}

// CreateReport persists the durable-save phase of a report.
func (s *SQLiteStore) CreateReport(ctx context.Context, report *domain.Report) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (report_id, session_id, location, perpetrator, description, evidence, user_goal, generated_document, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)`,
		report.ReportID, report.SessionID, report.Location, report.Perpetrator,
		report.Description, report.Evidence, report.UserGoal, report.Status, report.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSessionNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrReportExists
		}
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetReportBySession retrieves the (at most one) report for a session.
func (s *SQLiteStore) GetReportBySession(ctx context.Context, sessionID string) (*domain.Report, error) {
	var r domain.Report
	var doc sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT report_id, session_id, location, perpetrator, description, evidence, user_goal, generated_document, status, created_at
		 FROM reports WHERE session_id = ?`,
		sessionID).Scan(&r.ReportID, &r.SessionID, &r.Location, &r.Perpetrator,
		&r.Description, &r.Evidence, &r.UserGoal, &doc, &r.Status, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if doc.Valid {
		r.GeneratedDocument = &doc.String
	}
	return &r, nil
}

// MarkReportGenerated stores the generated narrative. The status guard makes
// the transition write-once: once generated or failed, the document is never
// rewritten.
func (s *SQLiteStore) MarkReportGenerated(ctx context.Context, reportID, document string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE reports SET generated_document = ?, status = ? WHERE report_id = ? AND status = ?`,
		document, domain.ReportStatusGenerated, reportID, domain.ReportStatusPendingGeneration)
	if err != nil {
		return fmt.Errorf("failed to mark report generated: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// MarkReportFailed records an exhausted generation attempt. The structured
// fields and the NULL document stay as written by the durable-save phase.
func (s *SQLiteStore) MarkReportFailed(ctx context.Context, reportID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE reports SET status = ? WHERE report_id = ? AND status = ?`,
		domain.ReportStatusGenerationFailed, reportID, domain.ReportStatusPendingGeneration)
	if err != nil {
		return fmt.Errorf("failed to mark report failed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
