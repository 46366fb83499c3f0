package repository

import (
	"context"
	"fmt"

	"hospital-recommender/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

type reviewStoreRepository struct {
	pool *pgxpool.Pool
}

// NewReviewStoreRepository creates a ReviewStore over the review_summaries
// table.
func NewReviewStoreRepository(pool *pgxpool.Pool) domain.ReviewStore {
	return &reviewStoreRepository{pool: pool}
}

const fetchReviewsQuery = `
	SELECT rs.hospital_id, h.name, rs.review, rs.embedding
	FROM review_summaries rs
	JOIN hospitals h ON rs.hospital_id = h.id
	WHERE rs.hospital_id = ANY($1)
`

func (r *reviewStoreRepository) FetchReviews(ctx context.Context, candidateIDs []string) ([]domain.ReviewRecord, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, fetchReviewsQuery, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query review summaries: %w", err)
	}
	defer rows.Close()

	var records []domain.ReviewRecord
	for rows.Next() {
		var (
			rec domain.ReviewRecord
			raw any
		)
		if err := rows.Scan(&rec.CandidateID, &rec.DisplayName, &rec.ReviewText, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan review record: %w", err)
		}
		rec.Embedding = decodeEmbedding(raw)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return records, nil
}

// decodeEmbedding normalizes the two storage encodings to an
// EmbeddingPayload. Legacy rows hold a bracketed float list in a text
// column; migrated rows hold a native vector column. The decode is lazy:
// a row with an undecodable value is handed downstream as a payload whose
// Floats call fails, so the ranking stage can skip it per its contract.
func decodeEmbedding(raw any) domain.EmbeddingPayload {
	switch v := raw.(type) {
	case string:
		return domain.TextualEmbedding(v)
	case []byte:
		return domain.TextualEmbedding(v)
	case pgvector.Vector:
		return widen(v.Slice())
	case []float32:
		return widen(v)
	case []float64:
		return domain.NativeEmbedding(v)
	default:
		return unsupportedEmbedding{goType: fmt.Sprintf("%T", raw)}
	}
}

func widen(values []float32) domain.NativeEmbedding {
	out := make([]float64, len(values))
	for i, f := range values {
		out[i] = float64(f)
	}
	return domain.NativeEmbedding(out)
}

type unsupportedEmbedding struct {
	goType string
}

func (u unsupportedEmbedding) Floats() ([]float64, error) {
	return nil, fmt.Errorf("unsupported embedding encoding %s", u.goType)
}
