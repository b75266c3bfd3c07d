package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hotmeal/recommender/internal/auth"
	"github.com/hotmeal/recommender/internal/domain"
	"github.com/hotmeal/recommender/internal/recommend"
)

// GET /recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "A valid bearer token is required")
		return
	}

	// Parse and validate limit; range clamping happens in the engine.
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	// Unknown strategy names deliberately fall back to the default fusion.
	strategy := recommend.ParseStrategy(r.URL.Query().Get("strategy"))

	weights, err := parseWeights(r.URL.Query().Get("weights"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter",
			"Weights must be three floats summing to 1.0, e.g. 0.5,0.3,0.2")
		return
	}

	result, err := h.service.GetRecommendations(r.Context(), userID, recommend.Options{
		Limit:    limit,
		Strategy: strategy,
		Weights:  weights,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidWeights) {
			writeError(w, http.StatusBadRequest, "invalid_parameter",
				"Weights must be three floats summing to 1.0, e.g. 0.5,0.3,0.2")
			return
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := RecommendationResponse{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Metadata: domain.RecommendationMeta{
			Strategy:    strategy.String(),
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseWeights parses the "profile,itemcf,popular" triple. An empty value
// means the configured defaults apply.
func parseWeights(raw string) (*recommend.Weights, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return nil, recommend.ErrInvalidWeights
	}
	vals := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, recommend.ErrInvalidWeights
		}
		vals[i] = v
	}
	w := &recommend.Weights{Profile: vals[0], ItemCF: vals[1], Popular: vals[2]}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
