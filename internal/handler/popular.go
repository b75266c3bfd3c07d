package handler

import (
	"net/http"
	"strconv"
	"time"
)

const (
	defaultPopularLimit = 10
	maxPopularLimit     = 50
)

// GET /dishes/popular
func (h *Handler) GetPopularDishes(w http.ResponseWriter, r *http.Request) {
	limit := defaultPopularLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxPopularLimit {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	dishes := h.service.GetPopularDishes(r.Context(), limit)

	writeJSON(w, http.StatusOK, PopularDishesResponse{
		Dishes:      dishes,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		TotalCount:  len(dishes),
	})
}
