package usecase

import (
	"fmt"

	"hospital-recommender/internal/domain"
)

const analystSystemPrompt = "You are a medical service analyst. Provide an objective, trustworthy assessment grounded strictly in the review content."

const explanationPromptTemplate = `Facility: %s

Review summary:
%s

User request:
%s

Based on the review summary, explain in one short paragraph how well this facility fits the user's request. Mention concrete points from the reviews and do not make claims the reviews do not support.`

// BuildExplanationMessages composes the fixed analyst instruction with the
// facility name, its review summary, and the user's request.
func BuildExplanationMessages(facilityName, reviewSummary, userQuery string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: analystSystemPrompt},
		{Role: domain.RoleUser, Content: fmt.Sprintf(explanationPromptTemplate, facilityName, reviewSummary, userQuery)},
	}
}
