package di

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hospital-recommender/internal/adapter/openaiapi"
	"hospital-recommender/internal/adapter/repository"
	"hospital-recommender/internal/domain"
	"hospital-recommender/internal/infra/config"
	"hospital-recommender/internal/infra/httpclient"
	"hospital-recommender/internal/ranking"
	"hospital-recommender/internal/usecase"
)

// ApplicationComponents holds all wired dependencies for the application.
type ApplicationComponents struct {
	CandidateSearch domain.CandidateSearch
	ReviewStore     domain.ReviewStore
	Encoder         domain.VectorEncoder
	Generator       domain.ChatClient
	Recommend       usecase.RecommendUsecase
}

// NewApplicationComponents wires all dependencies from config and database
// pool.
func NewApplicationComponents(cfg *config.Config, pool *pgxpool.Pool, log *slog.Logger) (*ApplicationComponents, error) {
	candidateSearch := repository.NewCandidateSearchRepository(pool)
	reviewStore := repository.NewReviewStoreRepository(pool)

	// Shared HTTP clients with connection pooling
	embedderHTTP := httpclient.NewPooledClient(time.Duration(cfg.BackendTimeout) * time.Second)
	generatorHTTP := httpclient.NewPooledClient(time.Duration(cfg.GenerateTimeout) * time.Second)

	var encoder domain.VectorEncoder = openaiapi.NewEmbedder(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.EmbeddingModel, embedderHTTP)
	if cfg.EmbeddingCacheSize > 0 {
		cached, err := openaiapi.NewCachingEncoder(encoder, cfg.EmbeddingCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to wire embedding cache: %w", err)
		}
		encoder = cached
	}
	generator := openaiapi.NewChatGenerator(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ChatModel, generatorHTTP)

	ranker := ranking.NewRanker(encoder, log)
	explainer := usecase.NewExplanationGenerator(generator, log)

	var throttle domain.Throttle
	switch cfg.ThrottleMode {
	case "none":
		throttle = domain.NoThrottle{}
	case "token_bucket":
		throttle = domain.NewRateLimitThrottle(cfg.RatePerMinute)
		log.Info("throttle_token_bucket_enabled", slog.Int("rate_per_minute", cfg.RatePerMinute))
	default:
		throttle = domain.FixedDelayThrottle{Delay: time.Duration(cfg.PacingSeconds) * time.Second}
	}

	recommend := usecase.NewRecommendUsecase(
		candidateSearch, reviewStore, ranker, explainer, throttle,
		cfg.SearchLimit, cfg.MaxAnalysis, log,
	)

	return &ApplicationComponents{
		CandidateSearch: candidateSearch,
		ReviewStore:     reviewStore,
		Encoder:         encoder,
		Generator:       generator,
		Recommend:       recommend,
	}, nil
}
