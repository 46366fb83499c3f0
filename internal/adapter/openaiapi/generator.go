package openaiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hospital-recommender/internal/domain"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatGenerator sends role-tagged messages to an OpenAI-compatible chat
// completions endpoint.
type ChatGenerator struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewChatGenerator constructs a generator for the given endpoint and model.
func NewChatGenerator(baseURL, apiKey, model string, client *http.Client) *ChatGenerator {
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}
	return &ChatGenerator{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		Client:  client,
	}
}

// Complete sends the messages and returns the first choice's content.
func (g *ChatGenerator) Complete(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error) {
	reqMessages := make([]chatMessage, len(messages))
	for i, m := range messages {
		reqMessages[i] = chatMessage{Role: m.Role, Content: m.Content}
	}

	jsonPayload, err := json.Marshal(chatRequest{
		Model:       g.Model,
		Messages:    reqMessages,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", g.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call generation endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generation endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("generation response contained no choices")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// Version returns the wrapped model name.
func (g *ChatGenerator) Version() string {
	return g.Model
}

var _ domain.ChatClient = (*ChatGenerator)(nil)
