package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClaudeBridge handles communication with the Anthropic Messages API.
type ClaudeBridge struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewClaudeBridge creates a new Claude bridge
func NewClaudeBridge(baseURL, apiKey, model string, maxTokens int, temperature float64) *ClaudeBridge {
	return &ClaudeBridge{
		baseURL:     baseURL,
		apiKey:      apiKey,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	System      string          `json:"system,omitempty"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends a system prompt and one user message and returns the
// generated text. The call is bound by the request context and the
// client timeout; there is no retry.
func (b *ClaudeBridge) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	payload := claudeRequest{
		Model:       b.model,
		MaxTokens:   b.maxTokens,
		Temperature: b.temperature,
		System:      systemPrompt,
		Messages: []claudeMessage{
			{Role: "user", Content: userMessage},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("claude: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("claude: failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("claude: failed to read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("claude: API returned status %d: %s", resp.StatusCode, respBody)
	}

	var out claudeResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("claude: failed to decode response: %w", err)
	}
	if len(out.Content) == 0 {
		return "", fmt.Errorf("claude: response contained no content")
	}

	return out.Content[0].Text, nil
}
