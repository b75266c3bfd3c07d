package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotmeal/recommender/internal/domain"
	"github.com/hotmeal/recommender/internal/recommend"
)

type stubInteractions struct {
	counts []recommend.DishCount
}

func (s *stubInteractions) AllPurchases(ctx context.Context) ([]recommend.Purchase, error) {
	return nil, nil
}

func (s *stubInteractions) UserDishes(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	return nil, nil
}

func (s *stubInteractions) DishOrderCounts(ctx context.Context, window time.Duration, limit int) ([]recommend.DishCount, error) {
	if len(s.counts) > limit {
		return s.counts[:limit], nil
	}
	return s.counts, nil
}

func (s *stubInteractions) UserFirstPurchases(ctx context.Context, userID int64) (map[int64]time.Time, error) {
	return nil, nil
}

type stubProfiles struct{}

func (stubProfiles) ExplicitPreference(ctx context.Context, userID int64) (string, error) {
	return "", nil
}

func (stubProfiles) TopOrderedCategory(ctx context.Context, userID int64) (string, error) {
	return "", nil
}

func (stubProfiles) CategoryDishesBySales(ctx context.Context, category string, limit int) ([]recommend.DishSales, error) {
	return nil, nil
}

type stubDishes struct{}

func (stubDishes) DishByID(ctx context.Context, dishID int64) (*domain.Dish, error) {
	return &domain.Dish{ID: dishID, Name: "dish", Price: 9.90, CategoryID: 1}, nil
}

func newTestService() *Service {
	log := zerolog.Nop()
	interactions := &stubInteractions{counts: []recommend.DishCount{
		{DishID: 1, Name: "Mapo Tofu", Count: 9},
		{DishID: 2, Name: "Egg Tarts", Count: 3},
	}}
	engine := recommend.NewEngine(
		recommend.NewPopularityScorer(interactions, log),
		recommend.NewItemCFScorer(interactions, log),
		recommend.NewProfileScorer(stubProfiles{}, log),
		stubDishes{},
		recommend.Config{
			DefaultLimit:    5,
			MaxLimit:        20,
			DefaultStrategy: recommend.StrategyPopular,
		},
		log,
	)
	return NewService(engine, recommend.NewPopularityScorer(interactions, log), nil, log)
}

func TestGetRecommendationsWithoutCache(t *testing.T) {
	svc := newTestService()

	result, err := svc.GetRecommendations(context.Background(), 1, recommend.Options{Limit: 2})

	require.NoError(t, err)
	assert.False(t, result.CacheHit, "a nil cache always recomputes")
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, int64(1), result.Recommendations[0].DishID)
	assert.InDelta(t, 0.75, result.Recommendations[0].Score, 1e-9)
}

func TestGetRecommendationsPropagatesWeightError(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetRecommendations(context.Background(), 1, recommend.Options{
		Strategy: recommend.StrategyWeighted,
		Weights:  &recommend.Weights{Profile: 0.9, ItemCF: 0.9, Popular: 0.9},
	})

	assert.ErrorIs(t, err, recommend.ErrInvalidWeights)
}

func TestGetPopularDishesMapping(t *testing.T) {
	svc := newTestService()

	dishes := svc.GetPopularDishes(context.Background(), 10)

	require.Len(t, dishes, 2)
	assert.Equal(t, domain.PopularDish{DishID: 1, Name: "Mapo Tofu", Count: 9}, dishes[0])
	assert.Equal(t, domain.PopularDish{DishID: 2, Name: "Egg Tarts", Count: 3}, dishes[1])
}
