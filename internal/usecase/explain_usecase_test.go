package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hospital-recommender/internal/domain"
	"hospital-recommender/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockChatClient
type mockChatClient struct {
	mock.Mock
}

func (m *mockChatClient) Complete(ctx context.Context, messages []domain.ChatMessage, temperature float64) (string, error) {
	args := m.Called(ctx, messages, temperature)
	return args.String(0), args.Error(1)
}

func (m *mockChatClient) Version() string {
	args := m.Called()
	return args.String(0)
}

func TestExplain_ReturnsTrimmedCompletion(t *testing.T) {
	chat := new(mockChatClient)
	gen := usecase.NewExplanationGenerator(chat, testLogger())

	ctx := context.Background()
	chat.On("Complete", ctx, mock.Anything, 0.3).Return("  A good fit for you.\n", nil)

	got := gen.Explain(ctx, "Central Clinic", "friendly staff", "need dermatology")
	assert.Equal(t, "A good fit for you.", got)
}

func TestExplain_BackendFailureFallsBack(t *testing.T) {
	chat := new(mockChatClient)
	gen := usecase.NewExplanationGenerator(chat, testLogger())

	ctx := context.Background()
	chat.On("Version").Return("chat-test")
	chat.On("Complete", ctx, mock.Anything, 0.3).Return("", errors.New("timeout"))

	got := gen.Explain(ctx, "Central Clinic", "friendly staff", "need dermatology")
	assert.Equal(t, usecase.FallbackExplanation, got)
}

func TestExplain_BlankCompletionFallsBack(t *testing.T) {
	chat := new(mockChatClient)
	gen := usecase.NewExplanationGenerator(chat, testLogger())

	ctx := context.Background()
	chat.On("Complete", ctx, mock.Anything, 0.3).Return("   \n\t", nil)

	got := gen.Explain(ctx, "Central Clinic", "friendly staff", "need dermatology")
	assert.Equal(t, usecase.FallbackExplanation, got)
}

func TestExplain_PromptCarriesAllInputs(t *testing.T) {
	chat := new(mockChatClient)
	gen := usecase.NewExplanationGenerator(chat, testLogger())

	ctx := context.Background()
	chat.On("Complete", ctx, mock.MatchedBy(func(messages []domain.ChatMessage) bool {
		if len(messages) != 2 {
			return false
		}
		if messages[0].Role != domain.RoleSystem || messages[1].Role != domain.RoleUser {
			return false
		}
		user := messages[1].Content
		return strings.Contains(user, "Central Clinic") &&
			strings.Contains(user, "friendly staff") &&
			strings.Contains(user, "need dermatology")
	}), 0.3).Return("ok", nil)

	got := gen.Explain(ctx, "Central Clinic", "friendly staff", "need dermatology")
	assert.Equal(t, "ok", got)
	chat.AssertExpectations(t)
}
