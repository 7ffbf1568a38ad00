package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/safespace-id/safespace-backend/internal/domain"
	"github.com/safespace-id/safespace-backend/internal/retry"
)

const (
	// notConnectedReply is returned when the collaborator credential is
	// missing. The conversation stays usable.
	notConnectedReply = "Maaf, sistem AI sedang tidak terhubung (API Key hilang). Silakan hubungi admin."

	// fallbackReply is returned when generation failed after retries.
	fallbackReply = "Maaf, saya sedang kesulitan memproses pesanmu. Bisakah kamu mengulanginya perlahan?"
)

// SendMessage appends the user's turn, asks the collaborator for a reply with
// the prior history as context, appends that reply, and returns it.
//
// Calls for the same session are serialized so the read-history-then-append
// sequence of one call is never interleaved with another. Different sessions
// run in parallel.
func (s *Service) SendMessage(ctx context.Context, sessionID, text string) (*domain.Message, error) {
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return nil, storeErr(err)
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	// Generation context is everything prior to this message.
	history, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, storeErr(err)
	}

	userMsg := &domain.Message{
		MessageID: uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, userMsg); err != nil {
		return nil, storeErr(err)
	}

	replyText, err := s.generateReply(ctx, sessionID, text, history)
	if err != nil {
		// Client gone mid-generation: the user turn above stands, no
		// reply row is written.
		return nil, err
	}

	assistantMsg := &domain.Message{
		MessageID: uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   replyText,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(context.WithoutCancel(ctx), assistantMsg); err != nil {
		return nil, storeErr(err)
	}
	return assistantMsg, nil
}

// generateReply invokes the collaborator through the retry executor and
// degrades to a fixed apology instead of erroring, keeping chat available.
func (s *Service) generateReply(ctx context.Context, sessionID, text string, history []domain.Message) (string, error) {
	if !s.generator.Configured() {
		return notConnectedReply, nil
	}

	var reply string
	err := retry.Do(ctx, s.generationRetryConfig(), func(ctx context.Context) error {
		var genErr error
		reply, genErr = s.generator.GenerateReply(ctx, text, history)
		return genErr
	})
	if err == nil {
		return reply, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	log.Printf("ERROR: reply generation failed for session %s: %v", sessionID, err)
	return fallbackReply, nil
}

// GetHistory returns the session's full ordered history. Read-only.
func (s *Service) GetHistory(ctx context.Context, sessionID string) ([]domain.Message, error) {
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return nil, storeErr(err)
	}
	messages, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, storeErr(err)
	}
	return messages, nil
}
