package v1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/safespace-id/safespace-backend/internal/adapter/gemini"
	"github.com/safespace-id/safespace-backend/internal/config"
	"github.com/safespace-id/safespace-backend/internal/domain"
	"github.com/safespace-id/safespace-backend/internal/repository"
	"github.com/safespace-id/safespace-backend/internal/service"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

func newTestHandler(t *testing.T, gen gemini.Generator) (*Handler, *service.Service) {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:", repository.Options{})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		GeminiMaxAttempts: 2,
		GeminiRetryBase:   time.Millisecond,
		GeminiRetryMax:    2 * time.Millisecond,
	}
	svc := service.New(store, gen, cfg)
	return NewHandler(svc), svc
}

// cannedGenerator returns fixed text for every call.
type cannedGenerator struct{}

func (cannedGenerator) Configured() bool { return true }

func (cannedGenerator) GenerateReply(ctx context.Context, message string, history []domain.Message) (string, error) {
	return "Aku di sini untuk mendengarkan.", nil
}

func (cannedGenerator) GenerateNarrative(ctx context.Context, input domain.ReportInput) (string, error) {
	return "KRONOLOGI KEJADIAN\n\nDokumen pengaduan.", nil
}

// failingGenerator always fails, driving the degraded paths.
type failingGenerator struct{}

func (failingGenerator) Configured() bool { return true }

func (failingGenerator) GenerateReply(ctx context.Context, message string, history []domain.Message) (string, error) {
	return "", errors.New("upstream unavailable")
}

func (failingGenerator) GenerateNarrative(ctx context.Context, input domain.ReportInput) (string, error) {
	return "", errors.New("upstream unavailable")
}

func createSessionViaService(t *testing.T, svc *service.Service) string {
	t.Helper()
	session, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return session.SessionID
}
