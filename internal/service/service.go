// Package service implements the orchestration logic of the SafeSpace
// backend: session lifetime, conversation turns, and the report pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/safespace-id/safespace-backend/internal/adapter/gemini"
	"github.com/safespace-id/safespace-backend/internal/config"
	"github.com/safespace-id/safespace-backend/internal/domain"
	"github.com/safespace-id/safespace-backend/internal/repository"
	"github.com/safespace-id/safespace-backend/internal/retry"
)

// Service coordinates the store and the generation collaborator.
type Service struct {
	store     repository.Store
	generator gemini.Generator
	config    *config.Config

	// locksMu guards sessionLocks. Each session gets its own mutex so one
	// in-flight SendMessage per session is enforced without serializing
	// unrelated sessions.
	locksMu      sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// New creates the service. All collaborators are injected; the service holds
// no global state.
func New(store repository.Store, generator gemini.Generator, cfg *config.Config) *Service {
	return &Service{
		store:        store,
		generator:    generator,
		config:       cfg,
		sessionLocks: make(map[string]*sync.Mutex),
	}
}

// Ping verifies the persistence backend is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// PoolStats exposes the connection pool snapshot for the health endpoint.
func (s *Service) PoolStats() repository.PoolStats {
	return s.store.PoolStats()
}

// lockSession acquires the per-session mutex and returns its unlock func.
func (s *Service) lockSession(sessionID string) func() {
	s.locksMu.Lock()
	mu, ok := s.sessionLocks[sessionID]
	if !ok {
		mu = &sync.Mutex{}
		s.sessionLocks[sessionID] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// forgetSessionLock drops the mutex of a deleted session.
func (s *Service) forgetSessionLock(sessionID string) {
	s.locksMu.Lock()
	delete(s.sessionLocks, sessionID)
	s.locksMu.Unlock()
}

// generationRetryConfig builds the bounded-backoff settings for collaborator
// calls. A missing credential is never worth retrying.
func (s *Service) generationRetryConfig() retry.Config {
	return retry.Config{
		MaxAttempts: s.config.GeminiMaxAttempts,
		BaseDelay:   s.config.GeminiRetryBase,
		MaxDelay:    s.config.GeminiRetryMax,
		RetryIf: func(err error) bool {
			return !errors.Is(err, domain.ErrNotConfigured)
		},
	}
}

// storeErr maps storage failures onto the error taxonomy. Domain sentinels
// pass through; anything else means the backend is unavailable.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, domain.ErrReportNotFound) ||
		errors.Is(err, domain.ErrReportExists) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
}
