package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ReviewRecord carries the stored review summary and embedding for one
// candidate. Candidates without a stored summary simply have no record.
type ReviewRecord struct {
	CandidateID string
	DisplayName string
	ReviewText  string
	Embedding   EmbeddingPayload
}

// EmbeddingPayload abstracts over the two storage encodings of an embedding:
// legacy rows persist it as a bracketed float list in a text column, newer
// rows as a native vector column. Decoding failures surface from Floats so
// the ranking stage can skip the record instead of aborting the batch.
type EmbeddingPayload interface {
	Floats() ([]float64, error)
}

// TextualEmbedding is the legacy "[0.1, 0.2, ...]" text encoding.
type TextualEmbedding string

func (t TextualEmbedding) Floats() ([]float64, error) {
	s := strings.TrimSpace(string(t))
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty embedding text")
	}
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid embedding element %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// NativeEmbedding is an already-structured float sequence.
type NativeEmbedding []float64

func (n NativeEmbedding) Floats() ([]float64, error) {
	if len(n) == 0 {
		return nil, fmt.Errorf("empty embedding vector")
	}
	return []float64(n), nil
}
