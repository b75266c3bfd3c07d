package service

import (
	"context"

	"github.com/hotmeal/recommender/internal/cache"
	"github.com/hotmeal/recommender/internal/domain"
	"github.com/hotmeal/recommender/internal/recommend"
	"github.com/rs/zerolog"
)

// Service sits between the transport layer and the recommendation engine:
// it consults the result cache, falls through to the engine, and serves the
// display-oriented popularity ranking. The cache may be nil, in which case
// every request recomputes.
type Service struct {
	engine  *recommend.Engine
	popular *recommend.PopularityScorer
	cache   *cache.Cache
	log     zerolog.Logger
}

func NewService(engine *recommend.Engine, popular *recommend.PopularityScorer, cache *cache.Cache, log zerolog.Logger) *Service {
	return &Service{
		engine:  engine,
		popular: popular,
		cache:   cache,
		log:     log,
	}
}

// GetRecommendations returns a ranked, hydrated dish list for the user.
// Requests with caller-supplied weights bypass the cache; the key space only
// covers the configured defaults.
func (s *Service) GetRecommendations(ctx context.Context, userID int64, opts recommend.Options) (*domain.RecommendationResult, error) {
	cacheable := s.cache != nil && opts.Weights == nil
	strategy := opts.Strategy.String()

	if cacheable {
		cached, found, err := s.cache.Get(ctx, userID, opts.Limit, strategy)
		if err != nil {
			s.log.Error().Err(err).Int64("user_id", userID).Msg("cache get failed")
		}
		if found {
			return &domain.RecommendationResult{
				Recommendations: cached,
				CacheHit:        true,
			}, nil
		}
	}

	recs, err := s.engine.Recommend(ctx, userID, opts)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, userID, opts.Limit, strategy, recs); err != nil {
			s.log.Error().Err(err).Int64("user_id", userID).Msg("cache set failed")
		}
	}

	return &domain.RecommendationResult{
		Recommendations: recs,
		CacheHit:        false,
	}, nil
}

// GetPopularDishes returns the trending list by raw order-item volume,
// intended for display rather than fusion.
func (s *Service) GetPopularDishes(ctx context.Context, limit int) []domain.PopularDish {
	counts := s.popular.Raw(ctx, limit)
	dishes := make([]domain.PopularDish, 0, len(counts))
	for _, c := range counts {
		dishes = append(dishes, domain.PopularDish{
			DishID: c.DishID,
			Name:   c.Name,
			Count:  c.Count,
		})
	}
	return dishes
}
