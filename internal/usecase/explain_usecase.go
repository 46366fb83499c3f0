package usecase

import (
	"context"
	"log/slog"
	"strings"

	"hospital-recommender/internal/domain"
)

// FallbackExplanation is returned whenever generation fails. Each
// candidate's explanation is an independent unit of work; one failure must
// not abort the batch.
const FallbackExplanation = "An explanation could not be generated for this facility."

// Low temperature favors factual grounding over creativity.
const explanationTemperature = 0.3

// ExplanationGenerator produces a per-candidate natural-language
// justification through an isolated generation call.
type ExplanationGenerator interface {
	Explain(ctx context.Context, facilityName, reviewSummary, userQuery string) string
}

type explanationGenerator struct {
	chat   domain.ChatClient
	logger *slog.Logger
}

// NewExplanationGenerator wires an ExplanationGenerator on top of a chat
// backend.
func NewExplanationGenerator(chat domain.ChatClient, logger *slog.Logger) ExplanationGenerator {
	return &explanationGenerator{chat: chat, logger: logger}
}

func (g *explanationGenerator) Explain(ctx context.Context, facilityName, reviewSummary, userQuery string) string {
	messages := BuildExplanationMessages(facilityName, reviewSummary, userQuery)

	text, err := g.chat.Complete(ctx, messages, explanationTemperature)
	if err != nil {
		g.logger.Warn("explanation_generation_failed",
			slog.String("facility", facilityName),
			slog.String("model", g.chat.Version()),
			slog.String("error", err.Error()))
		return FallbackExplanation
	}
	text = strings.TrimSpace(text)
	if text == "" {
		g.logger.Warn("explanation_generation_empty", slog.String("facility", facilityName))
		return FallbackExplanation
	}
	return text
}
