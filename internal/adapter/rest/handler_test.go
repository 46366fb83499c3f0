package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-recommender/internal/adapter/rest"
	"hospital-recommender/internal/domain"
	"hospital-recommender/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecommendUsecase struct {
	mock.Mock
}

func (m *MockRecommendUsecase) Execute(ctx context.Context, input usecase.RecommendInput) (*usecase.RecommendOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.RecommendOutput), args.Error(1)
}

func doRequest(t *testing.T, uc usecase.RecommendUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rest.NewHandler(uc).Register(e)

	req := httptest.NewRequest(http.MethodPost, "/v1/recommend", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRecommendEndpointOK(t *testing.T) {
	uc := new(MockRecommendUsecase)
	uc.On("Execute", mock.Anything, usecase.RecommendInput{
		Query:     "gentle pediatrician",
		Region:    "Seoul",
		Subregion: "Mapo",
	}).Return(&usecase.RecommendOutput{
		Status: usecase.StatusOK,
		Results: []domain.RecommendationResult{
			{
				Candidate: domain.Candidate{
					ID:      "h1",
					Name:    "Mapo Children's Clinic",
					Address: "12 Mapo-daero",
					Phone:   "02-000-0000",
				},
				Similarity:  0.9317,
				Explanation: "Reviewers praise the pediatric staff.",
			},
		},
	}, nil)

	rec := doRequest(t, uc, `{"query":"gentle pediatrician","region":"Seoul","subregion":"Mapo"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			ID          string  `json:"id"`
			Name        string  `json:"name"`
			Similarity  float64 `json:"similarity"`
			Explanation string  `json:"explanation"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "h1", resp.Results[0].ID)
	assert.Equal(t, 0.9317, resp.Results[0].Similarity)
}

func TestRecommendEndpointEmptyOutcome(t *testing.T) {
	uc := new(MockRecommendUsecase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&usecase.RecommendOutput{
		Status: usecase.StatusNoMatches,
	}, nil)

	rec := doRequest(t, uc, `{"query":"anything","region":"Seoul","subregion":"Mapo"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string          `json:"status"`
		Results json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no_matches", resp.Status)
	assert.JSONEq(t, "[]", string(resp.Results))
}

func TestRecommendEndpointValidationError(t *testing.T) {
	uc := new(MockRecommendUsecase)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrInvalidInput)

	rec := doRequest(t, uc, `{"region":"Seoul","subregion":"Mapo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendEndpointMalformedBody(t *testing.T) {
	uc := new(MockRecommendUsecase)

	rec := doRequest(t, uc, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestRecommendEndpointBackendFailureIsOpaque(t *testing.T) {
	uc := new(MockRecommendUsecase)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, errors.New("pg: connection refused to 10.0.0.5"))

	rec := doRequest(t, uc, `{"query":"q","region":"Seoul","subregion":"Mapo"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
