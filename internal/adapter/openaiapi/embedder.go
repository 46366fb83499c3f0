package openaiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hospital-recommender/internal/domain"
)

// Embedder calls an OpenAI-compatible embeddings endpoint.
type Embedder struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewEmbedder constructs an embedder for the given endpoint and model.
func NewEmbedder(baseURL, apiKey, model string, client *http.Client) *Embedder {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Embedder{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		Client:  client,
	}
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

func (e *Embedder) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	start := time.Now()

	jsonData, err := json.Marshal(embeddingRequest{Model: e.Model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/embeddings", e.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.Client.Do(req)
	if err != nil {
		slog.Error("embedding_request_failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)),
		)
		return nil, fmt.Errorf("failed to call embedding endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		slog.Error("embedding_bad_status",
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)),
		)
		return nil, fmt.Errorf("embedding endpoint returned status %d", resp.StatusCode)
	}

	var respBody embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}

	embeddings := make([][]float64, len(respBody.Data))
	for i, d := range respBody.Data {
		embeddings[i] = d.Embedding
	}

	slog.Info("embedding_completed",
		slog.Int("text_count", len(texts)),
		slog.Int("embedding_count", len(embeddings)),
		slog.String("model", e.Model),
		slog.Duration("elapsed", time.Since(start)),
	)

	return embeddings, nil
}

func (e *Embedder) Version() string {
	return e.Model
}

var _ domain.VectorEncoder = (*Embedder)(nil)
