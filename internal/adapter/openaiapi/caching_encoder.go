package openaiapi

import (
	"context"
	"fmt"

	"hospital-recommender/internal/domain"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingEncoder memoizes embeddings per input text. Re-embedding an
// unchanged query is the most common duplicate call in this service, and the
// upstream embedder is the slowest hop in the pipeline.
type CachingEncoder struct {
	inner domain.VectorEncoder
	cache *lru.Cache[string, []float64]
}

// NewCachingEncoder wraps inner with an LRU of the given size.
func NewCachingEncoder(inner domain.VectorEncoder, size int) (*CachingEncoder, error) {
	cache, err := lru.New[string, []float64](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding cache: %w", err)
	}
	return &CachingEncoder{inner: inner, cache: cache}, nil
}

func (c *CachingEncoder) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))

	var (
		misses    []string
		missIndex []int
	)
	for i, text := range texts {
		if cached, ok := c.cache.Get(text); ok {
			out[i] = cached
			continue
		}
		misses = append(misses, text)
		missIndex = append(missIndex, i)
	}

	if len(misses) > 0 {
		encoded, err := c.inner.Encode(ctx, misses)
		if err != nil {
			return nil, err
		}
		if len(encoded) != len(misses) {
			return nil, fmt.Errorf("expected %d embeddings, got %d", len(misses), len(encoded))
		}
		for j, vec := range encoded {
			c.cache.Add(misses[j], vec)
			out[missIndex[j]] = vec
		}
	}

	return out, nil
}

func (c *CachingEncoder) Version() string {
	return c.inner.Version()
}

var _ domain.VectorEncoder = (*CachingEncoder)(nil)
