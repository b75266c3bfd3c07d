package domain

// RecommendedDish is a scored dish hydrated for presentation.
type RecommendedDish struct {
	DishID     int64   `json:"dish_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"category_id"`
	Score      float64 `json:"score"`
}

type RecommendationMeta struct {
	Strategy    string `json:"strategy"`
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Recommendations []RecommendedDish
	CacheHit        bool
}

// PopularDish carries raw order-item volume for display rankings,
// as opposed to the normalized scores used in fusion.
type PopularDish struct {
	DishID int64  `json:"dish_id"`
	Name   string `json:"name"`
	Count  int64  `json:"count"`
}
