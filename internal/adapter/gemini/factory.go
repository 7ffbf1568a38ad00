package gemini

import (
	"log"
	"os"
	"time"
)

const (
	// EnvSafespaceMode is the environment variable name for mode selection.
	EnvSafespaceMode = "SAFESPACE_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewGenerator creates a generator based on the SAFESPACE_MODE environment
// variable. If SAFESPACE_MODE=MOCK, returns a MockClient; otherwise returns a
// real Client.
func NewGenerator(baseURL, apiKey string, timeout time.Duration) Generator {
	mode := os.Getenv(EnvSafespaceMode)

	if mode == ModeMock {
		log.Println("SAFESPACE_MODE=MOCK detected, using mock generation client")
		return NewMockClient()
	}

	if apiKey == "" {
		log.Println("WARN: GOOGLE_API_KEY not set, chat and report generation will degrade")
	}
	return NewClient(baseURL, apiKey, timeout)
}
