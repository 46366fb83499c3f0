package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"hospital-recommender/internal/domain"
)

// SimilarityResult is one ranked candidate. Ranks are 1-based and dense;
// scores are cosine similarities rounded to four decimal places.
type SimilarityResult struct {
	Rank        int
	CandidateID string
	DisplayName string
	ReviewText  string
	Score       float64
}

// Ranker orders review records by semantic similarity to a query.
type Ranker struct {
	encoder domain.VectorEncoder
	logger  *slog.Logger
}

// NewRanker creates a Ranker backed by the given embedding encoder.
func NewRanker(encoder domain.VectorEncoder, logger *slog.Logger) *Ranker {
	return &Ranker{encoder: encoder, logger: logger}
}

// Rank embeds the query, normalizes every embedding, and returns the
// min(topK, valid records) nearest candidates by inner product.
//
// Failure policy: an unavailable or empty query embedding yields an empty
// result ("no ranking possible", not an error). A record whose embedding
// fails to parse is skipped and logged. A dimension mismatch across the
// batch is a fatal input error.
func (r *Ranker) Rank(ctx context.Context, queryText string, records []domain.ReviewRecord, topK int) ([]SimilarityResult, error) {
	if len(records) == 0 {
		return nil, nil
	}

	embeddings, err := r.encoder.Encode(ctx, []string{queryText})
	if err != nil {
		r.logger.Warn("query_embedding_failed", slog.String("error", err.Error()))
		return nil, nil
	}
	if len(embeddings) == 0 || len(embeddings[0]) == 0 {
		r.logger.Warn("query_embedding_empty")
		return nil, nil
	}
	query := Normalize(embeddings[0])

	index := newFlatIndex(len(query))
	kept := make([]domain.ReviewRecord, 0, len(records))
	for _, rec := range records {
		values, err := rec.Embedding.Floats()
		if err != nil {
			r.logger.Warn("record_embedding_unparseable",
				slog.String("candidate_id", rec.CandidateID),
				slog.String("error", err.Error()))
			continue
		}
		if err := index.Add(Normalize(values)); err != nil {
			return nil, fmt.Errorf("candidate %s: %w", rec.CandidateID, err)
		}
		kept = append(kept, rec)
	}
	if index.Len() == 0 {
		r.logger.Warn("no_valid_embeddings", slog.Int("record_count", len(records)))
		return nil, nil
	}

	positions, scores, err := index.Search(query, topK)
	if err != nil {
		return nil, err
	}

	results := make([]SimilarityResult, 0, len(positions))
	for i, pos := range positions {
		rec := kept[pos]
		results = append(results, SimilarityResult{
			Rank:        i + 1,
			CandidateID: rec.CandidateID,
			DisplayName: rec.DisplayName,
			ReviewText:  rec.ReviewText,
			Score:       roundScore(scores[i]),
		})
	}

	r.logger.Info("similarity_ranking_completed",
		slog.Int("record_count", len(records)),
		slog.Int("valid_count", index.Len()),
		slog.Int("result_count", len(results)))

	return results, nil
}

func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
