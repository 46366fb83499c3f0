package repository

import (
	"context"
	"math"
	"testing"

	"github.com/pgvector/pgvector-go"
)

func TestFetchReviewsEmptyIDsSkipsQuery(t *testing.T) {
	repo := NewReviewStoreRepository(nil)

	records, err := repo.FetchReviews(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchReviews failed: %v", err)
	}
	if records != nil {
		t.Errorf("expected nil records, got %v", records)
	}
}

func TestDecodeEmbeddingText(t *testing.T) {
	payload := decodeEmbedding("[0.1, 0.2, 0.3]")

	values, err := payload.Floats()
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	if len(values) != 3 || values[1] != 0.2 {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestDecodeEmbeddingBytes(t *testing.T) {
	payload := decodeEmbedding([]byte("[1, 2]"))

	values, err := payload.Floats()
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	if len(values) != 2 || values[0] != 1 {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestDecodeEmbeddingVector(t *testing.T) {
	payload := decodeEmbedding(pgvector.NewVector([]float32{0.5, 0.25}))

	values, err := payload.Floats()
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	if len(values) != 2 || values[0] != 0.5 || values[1] != 0.25 {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestDecodeEmbeddingFloat32Widening(t *testing.T) {
	payload := decodeEmbedding([]float32{0.1})

	values, err := payload.Floats()
	if err != nil {
		t.Fatalf("Floats failed: %v", err)
	}
	// float32(0.1) widened, not the float64 literal.
	if math.Abs(values[0]-float64(float32(0.1))) > 1e-12 {
		t.Errorf("unexpected widened value: %v", values[0])
	}
}

func TestDecodeEmbeddingUnsupportedTypeFailsLazily(t *testing.T) {
	payload := decodeEmbedding(42)

	if _, err := payload.Floats(); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}
