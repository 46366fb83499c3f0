package rest

import (
	"errors"
	"net/http"

	"hospital-recommender/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Handler exposes the recommendation pipeline over HTTP.
type Handler struct {
	recommend usecase.RecommendUsecase
}

func NewHandler(recommend usecase.RecommendUsecase) *Handler {
	return &Handler{recommend: recommend}
}

// Register attaches the handler's routes to the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	e.POST("/v1/recommend", h.Recommend)
}

type recommendRequest struct {
	Query        string `json:"query"`
	Region       string `json:"region"`
	Subregion    string `json:"subregion"`
	FacilityType string `json:"facility_type"`
	Department   string `json:"department"`
	MaxAnalysis  int    `json:"max_analysis"`
}

type recommendationJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	URL         string  `json:"url,omitempty"`
	Similarity  float64 `json:"similarity"`
	Explanation string  `json:"explanation"`
}

type recommendResponse struct {
	Status  string               `json:"status"`
	Results []recommendationJSON `json:"results"`
}

// Recommend runs the full pipeline for one request.
// (POST /v1/recommend)
func (h *Handler) Recommend(ctx echo.Context) error {
	var req recommendRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	output, err := h.recommend.Execute(ctx.Request().Context(), usecase.RecommendInput{
		Query:        req.Query,
		Region:       req.Region,
		Subregion:    req.Subregion,
		FacilityType: req.FacilityType,
		Department:   req.Department,
		MaxAnalysis:  req.MaxAnalysis,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		// Backend connectivity failures; never surface raw backend text.
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "recommendation failed"})
	}

	results := make([]recommendationJSON, 0, len(output.Results))
	for _, r := range output.Results {
		results = append(results, recommendationJSON{
			ID:          r.ID,
			Name:        r.Name,
			Address:     r.Address,
			Phone:       r.Phone,
			URL:         r.URL,
			Similarity:  r.Similarity,
			Explanation: r.Explanation,
		})
	}

	return ctx.JSON(http.StatusOK, recommendResponse{
		Status:  string(output.Status),
		Results: results,
	})
}
