package handler

import "github.com/hotmeal/recommender/internal/domain"

type RecommendationResponse struct {
	UserID          int64                     `json:"user_id"`
	Recommendations []domain.RecommendedDish  `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type PopularDishesResponse struct {
	Dishes      []domain.PopularDish `json:"dishes"`
	GeneratedAt string               `json:"generated_at"`
	TotalCount  int                  `json:"total_count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
