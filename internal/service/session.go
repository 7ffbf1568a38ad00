package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// CreateSession allocates a new anonymous session. The identifier is random
// and carries no identity.
func (s *Service) CreateSession(ctx context.Context) (*domain.Session, error) {
	session := &domain.Session{
		SessionID: uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, storeErr(err)
	}
	return session, nil
}

// DeleteSession removes the session and, by ownership, every message and
// report scoped to it. Irreversible and unconditional.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return storeErr(err)
	}
	s.forgetSessionLock(sessionID)
	return nil
}
