// Package explain generates one-sentence route explanations with the
// Anthropic Messages API. The adapter is strictly best-effort: callers
// substitute a fixed placeholder on any failure and never fail the request.
package explain

import (
	"bytes"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const anthropicVersion = "2023-06-01"

// AnthropicExplainer implements the Explainer port with a single Messages
// API call covering all ranked routes at once.
type AnthropicExplainer struct {
	session *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewAnthropicExplainer(apiKey, model string, timeout time.Duration) (*AnthropicExplainer, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is empty")
	}
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &AnthropicExplainer{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: "https://api.anthropic.com",
		model:   model,
	}, nil
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// ExplainRoutes asks the model for one sentence per ranked route. The
// response is parsed by "Route N:" prefix; any route the model skipped
// still gets a generic line so ordering is preserved.
func (a *AnthropicExplainer) ExplainRoutes(
	ctx context.Context,
	routes []domain.ScoredRoute,
) (_ []string, err error) {
	defer obs.Time(ctx, "anthropic.ExplainRoutes")(&err)

	if len(routes) == 0 {
		return []string{}, nil
	}

	payload, err := json.Marshal(messagesRequest{
		Model:       a.model,
		MaxTokens:   1024,
		Temperature: 0,
		Messages:    []message{{Role: "user", Content: buildPrompt(routes)}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal messages request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create messages request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("messages request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("messages request: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var mr messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	var text strings.Builder
	for _, block := range mr.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return parseExplanations(text.String(), len(routes)), nil
}
