package gemini

import (
	"context"
	"fmt"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// MockClient is a mock implementation of Generator for local development and
// testing.
type MockClient struct{}

// NewMockClient creates a new mock generator.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Generator.
var _ Generator = (*MockClient)(nil)

// Configured always reports true so callers exercise the normal path.
func (m *MockClient) Configured() bool {
	return true
}

// GenerateReply returns a canned empathetic reply.
func (m *MockClient) GenerateReply(ctx context.Context, message string, history []domain.Message) (string, error) {
	return fmt.Sprintf("Terima kasih sudah bercerita. Aku mendengarkanmu. (%d pesan sebelumnya)", len(history)), nil
}

// GenerateNarrative returns a skeleton complaint form filled with the input.
func (m *MockClient) GenerateNarrative(ctx context.Context, input domain.ReportInput) (string, error) {
	return fmt.Sprintf(`## FORMULIR PENGADUAN KEKERASAN SEKSUAL

### I. IDENTIFIKASI KEBUTUHAN
Tujuan pelapor: %s

### II. IDENTIFIKASI PELAKU
Pelaku: %s

### III. KRONOLOGI KEJADIAN
Saya mengalami %s di %s.

### IV. BUKTI TERLAMPIR
Bukti tersedia: %s`, input.UserGoal, input.Perpetrator, input.Description, input.Location, input.Evidence), nil
}
