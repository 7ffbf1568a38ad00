package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/safespace-id/safespace-backend/internal/domain"
)

// Client talks to the Gemini generateContent REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Gemini client. An empty apiKey is allowed; calls
// then fail with domain.ErrNotConfigured so the caller can degrade.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// part is a single piece of content.
type part struct {
	Text string `json:"text"`
}

// content is a role-tagged list of parts. Gemini uses "user" and "model"
// on the wire.
type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// generationConfig holds sampling settings.
type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
}

// generateRequest is the generateContent request body.
type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

// generateResponse is the subset of the response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateReply produces a chat reply with the full ordered history as
// context.
func (c *Client) GenerateReply(ctx context.Context, message string, history []domain.Message) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{
			Role:  wireRole(m.Role),
			Parts: []part{{Text: m.Content}},
		})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	req := &generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: chatSystemInstruction}}},
		Contents:          contents,
	}
	return c.generate(ctx, chatModel, req)
}

// GenerateNarrative turns structured incident data into a complaint-form
// narrative. Low temperature keeps the output reproducible.
func (c *Client) GenerateNarrative(ctx context.Context, input domain.ReportInput) (string, error) {
	temperature := 0.3
	maxTokens := 2048
	req := &generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: reportSystemInstruction}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: buildReportPrompt(input)}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     &temperature,
			MaxOutputTokens: &maxTokens,
		},
	}
	return c.generate(ctx, reportModel, req)
}

func (c *Client) generate(ctx context.Context, model string, req *generateRequest) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("gemini API error: status %d", resp.StatusCode)
	}

	text := extractText(&out)
	if text == "" {
		return "", fmt.Errorf("gemini API returned empty response")
	}
	return text, nil
}

func extractText(resp *generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// wireRole maps domain roles to the API's "user"/"model" vocabulary.
func wireRole(r domain.Role) string {
	if r == domain.RoleAssistant {
		return "model"
	}
	return "user"
}
