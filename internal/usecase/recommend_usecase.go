package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hospital-recommender/internal/domain"
	"hospital-recommender/internal/ranking"

	"github.com/google/uuid"
)

// ErrInvalidInput marks request validation failures so callers can report
// them as client errors rather than backend failures.
var ErrInvalidInput = errors.New("invalid input")

// RecommendInput encapsulates the parameters that drive one recommendation
// request.
type RecommendInput struct {
	Query        string
	Region       string
	Subregion    string
	FacilityType string
	Department   string
	MaxAnalysis  int
}

// Status describes how a request terminated. Empty outcomes are valid
// terminal states, not errors.
type Status string

const (
	StatusOK        Status = "ok"
	StatusNoMatches Status = "no_matches"
	StatusNoReviews Status = "no_reviews"
	StatusNoRanking Status = "no_ranking"
)

// RecommendOutput is the ordered, annotated result list for one request.
type RecommendOutput struct {
	Status  Status
	Results []domain.RecommendationResult
}

// RecommendUsecase runs the full pipeline: attribute search, review fetch,
// similarity ranking, and paced explanation generation.
type RecommendUsecase interface {
	Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error)
}

// SimilarityRanker is the ranking stage as the pipeline sees it.
type SimilarityRanker interface {
	Rank(ctx context.Context, queryText string, records []domain.ReviewRecord, topK int) ([]ranking.SimilarityResult, error)
}

type recommendUsecase struct {
	search      domain.CandidateSearch
	reviews     domain.ReviewStore
	ranker      SimilarityRanker
	explainer   ExplanationGenerator
	throttle    domain.Throttle
	searchLimit int
	maxAnalysis int
	logger      *slog.Logger
}

// NewRecommendUsecase wires together the components of the recommendation
// pipeline.
func NewRecommendUsecase(
	search domain.CandidateSearch,
	reviews domain.ReviewStore,
	ranker SimilarityRanker,
	explainer ExplanationGenerator,
	throttle domain.Throttle,
	searchLimit, maxAnalysis int,
	logger *slog.Logger,
) RecommendUsecase {
	return &recommendUsecase{
		search:      search,
		reviews:     reviews,
		ranker:      ranker,
		explainer:   explainer,
		throttle:    throttle,
		searchLimit: searchLimit,
		maxAnalysis: maxAnalysis,
		logger:      logger,
	}
}

func (u *recommendUsecase) Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Region) == "" || strings.TrimSpace(input.Subregion) == "" {
		return nil, fmt.Errorf("%w: region and subregion are required", ErrInvalidInput)
	}

	maxAnalysis := input.MaxAnalysis
	if maxAnalysis <= 0 {
		maxAnalysis = u.maxAnalysis
	}

	log := u.logger.With(slog.String("request_id", uuid.NewString()))

	// Stage 1: attribute search. Fall back to the coarser location-only
	// query when the finer filters are unavailable.
	var (
		candidates []domain.Candidate
		err        error
	)
	if strings.TrimSpace(input.FacilityType) == "" || strings.TrimSpace(input.Department) == "" {
		candidates, err = u.search.SearchByLocation(ctx, input.Region, input.Subregion, u.searchLimit)
	} else {
		candidates, err = u.search.SearchCandidates(ctx, domain.Filters{
			Region:       input.Region,
			Subregion:    input.Subregion,
			FacilityType: input.FacilityType,
			Department:   input.Department,
		}, u.searchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("candidate search failed: %w", err)
	}
	log.Info("candidate_search_completed", slog.Int("candidate_count", len(candidates)))
	if len(candidates) == 0 {
		return &RecommendOutput{Status: StatusNoMatches}, nil
	}

	// Stage 2: review fetch.
	candidateIDs := make([]string, len(candidates))
	byID := make(map[string]domain.Candidate, len(candidates))
	for i, c := range candidates {
		candidateIDs[i] = c.ID
		byID[c.ID] = c
	}
	records, err := u.reviews.FetchReviews(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("review fetch failed: %w", err)
	}
	log.Info("review_fetch_completed", slog.Int("review_count", len(records)))
	if len(records) == 0 {
		return &RecommendOutput{Status: StatusNoReviews}, nil
	}

	// Stage 3: rank the entire fetched set to produce a complete ordering.
	ranked, err := u.ranker.Rank(ctx, input.Query, records, len(records))
	if err != nil {
		return nil, fmt.Errorf("similarity ranking failed: %w", err)
	}
	if len(ranked) == 0 {
		return &RecommendOutput{Status: StatusNoRanking}, nil
	}

	// Stage 4: explain the top entries in rank order, pacing between
	// consecutive generation calls but not after the last.
	if maxAnalysis > len(ranked) {
		maxAnalysis = len(ranked)
	}
	top := ranked[:maxAnalysis]

	results := make([]domain.RecommendationResult, 0, len(top))
	for i, sim := range top {
		candidate, ok := byID[sim.CandidateID]
		if !ok {
			// Ranked ids should always round-trip to a candidate; log this
			// distinctly so a data-consistency regression is visible.
			log.Warn("ranked_candidate_missing",
				slog.String("candidate_id", sim.CandidateID),
				slog.Int("rank", sim.Rank))
			continue
		}

		explanation := u.explainer.Explain(ctx, sim.DisplayName, sim.ReviewText, input.Query)
		results = append(results, domain.RecommendationResult{
			Candidate:   candidate,
			Similarity:  sim.Score,
			Explanation: explanation,
		})
		log.Info("candidate_explained",
			slog.Int("rank", sim.Rank),
			slog.String("candidate_id", sim.CandidateID),
			slog.Float64("similarity", sim.Score))

		if i < len(top)-1 {
			if err := u.throttle.Wait(ctx); err != nil {
				return nil, fmt.Errorf("pacing interrupted: %w", err)
			}
		}
	}

	log.Info("recommendation_completed", slog.Int("result_count", len(results)))
	return &RecommendOutput{Status: StatusOK, Results: results}, nil
}
