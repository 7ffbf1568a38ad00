package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/safespace-id/safespace-backend/internal/config"
	"github.com/safespace-id/safespace-backend/internal/domain"
	"github.com/safespace-id/safespace-backend/internal/repository"
)

// stubGenerator is a scriptable Generator for exercising failure paths.
type stubGenerator struct {
	mu          sync.Mutex
	configured  bool
	replyFn     func(ctx context.Context, message string, history []domain.Message) (string, error)
	narrativeFn func(ctx context.Context, input domain.ReportInput) (string, error)
	replyCalls  int
	narrCalls   int
}

func (g *stubGenerator) Configured() bool { return g.configured }

func (g *stubGenerator) GenerateReply(ctx context.Context, message string, history []domain.Message) (string, error) {
	g.mu.Lock()
	g.replyCalls++
	g.mu.Unlock()
	return g.replyFn(ctx, message, history)
}

func (g *stubGenerator) GenerateNarrative(ctx context.Context, input domain.ReportInput) (string, error) {
	g.mu.Lock()
	g.narrCalls++
	g.mu.Unlock()
	return g.narrativeFn(ctx, input)
}

func testConfig() *config.Config {
	return &config.Config{
		GeminiMaxAttempts: 3,
		GeminiRetryBase:   time.Millisecond,
		GeminiRetryMax:    4 * time.Millisecond,
	}
}

func newTestService(t *testing.T, gen *stubGenerator) (*Service, repository.Store) {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:", repository.Options{})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, gen, testConfig()), store
}

func okGenerator() *stubGenerator {
	return &stubGenerator{
		configured: true,
		replyFn: func(ctx context.Context, message string, history []domain.Message) (string, error) {
			return "Aku mendengarkanmu.", nil
		},
		narrativeFn: func(ctx context.Context, input domain.ReportInput) (string, error) {
			return "## FORMULIR PENGADUAN KEKERASAN SEKSUAL\n...", nil
		},
	}
}

func validReportInput() domain.ReportInput {
	return domain.ReportInput{
		Location:    domain.LocationKampus,
		Perpetrator: domain.PerpetratorLecturer,
		Description: domain.IncidentInappropriateComments,
		Evidence:    domain.EvidenceWitness,
		UserGoal:    domain.GoalDocumentSafely,
	}
}

func mustCreateSession(t *testing.T, svc *Service) *domain.Session {
	t.Helper()
	session, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return session
}
