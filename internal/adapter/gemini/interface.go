// Package gemini provides the client for the external text-generation
// collaborator.
package gemini

import (
	"context"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// Generator defines the generation operations the service layer depends on.
type Generator interface {
	// GenerateReply produces an empathetic chat reply for message, given the
	// full ordered history that preceded it.
	GenerateReply(ctx context.Context, message string, history []domain.Message) (string, error)

	// GenerateNarrative turns structured incident data into a formal
	// complaint-form narrative.
	GenerateNarrative(ctx context.Context, input domain.ReportInput) (string, error)

	// Configured reports whether the collaborator credential is present.
	// When false, callers degrade instead of erroring.
	Configured() bool
}

// Ensure Client implements Generator.
var _ Generator = (*Client)(nil)
