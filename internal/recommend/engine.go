package recommend

import (
	"context"

	"github.com/hotmeal/recommender/internal/domain"
	"github.com/rs/zerolog"
)

// Config bounds and defaults for the engine. DefaultWeights is used by the
// weighted strategy when the caller supplies none, and by the auto fallback.
type Config struct {
	DefaultLimit    int
	MaxLimit        int
	DefaultStrategy Strategy
	DefaultWeights  Weights
}

// Options are the per-request knobs of Recommend. Zero values mean "use the
// configured default".
type Options struct {
	Limit    int
	Strategy Strategy
	Weights  *Weights
}

// Engine is the single public entry point of the recommendation core. It
// selects a strategy, invokes the relevant scorers, fuses their score maps
// when asked to, truncates to the limit and hydrates dish IDs into
// presentable records.
//
// The engine is synchronous and stateless: every call recomputes its signals
// from the current data snapshot, holds no mutable state between invocations
// and therefore needs no locking. Scorer-internal failures never propagate;
// the worst outcome of any internal failure is an empty list.
type Engine struct {
	popular *PopularityScorer
	itemCF  *ItemCFScorer
	profile *ProfileScorer
	dishes  DishReader
	cfg     Config
	log     zerolog.Logger
}

func NewEngine(popular *PopularityScorer, itemCF *ItemCFScorer, profile *ProfileScorer, dishes DishReader, cfg Config, log zerolog.Logger) *Engine {
	return &Engine{
		popular: popular,
		itemCF:  itemCF,
		profile: profile,
		dishes:  dishes,
		cfg:     cfg,
		log:     log,
	}
}

// Recommend produces at most limit dishes for the user under the requested
// strategy. The only error it returns is weight validation; everything else
// degrades best-effort.
func (e *Engine) Recommend(ctx context.Context, userID int64, opts Options) ([]domain.RecommendedDish, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}
	if limit > e.cfg.MaxLimit {
		limit = e.cfg.MaxLimit
	}

	if opts.Weights != nil {
		if err := opts.Weights.Validate(); err != nil {
			return nil, err
		}
	}

	strategy := opts.Strategy
	if strategy == StrategyAuto {
		strategy = e.cfg.DefaultStrategy
	}

	e.log.Info().
		Int64("user_id", userID).
		Int("limit", limit).
		Stringer("strategy", strategy).
		Msg("generating recommendations")

	var scores ScoreMap
	switch strategy {
	case StrategyPopular:
		scores = e.popular.Normalized(ctx, limit)
	case StrategyUserCF:
		scores = e.itemCF.Score(ctx, userID, limit)
	case StrategyProfile:
		scores = e.profile.Score(ctx, userID, limit)
	case StrategyItemCFTime:
		scores = e.itemCF.ScoreWithDecay(ctx, userID, limit)
	case StrategyWeighted:
		weights := e.cfg.DefaultWeights
		if opts.Weights != nil {
			weights = *opts.Weights
		}
		scores = e.fuse(ctx, userID, limit, weights)
	default:
		// Misconfigured default strategy lands here as well: fall back to
		// fusion with the configured weights.
		scores = e.fuse(ctx, userID, limit, e.cfg.DefaultWeights)
	}

	return e.hydrate(ctx, scores.TopN(limit)), nil
}

func (e *Engine) fuse(ctx context.Context, userID int64, limit int, weights Weights) ScoreMap {
	return FuseScores(
		e.profile.Score(ctx, userID, limit),
		e.itemCF.Score(ctx, userID, limit),
		e.popular.Normalized(ctx, limit),
		weights,
	)
}

// FuseScores combines the three signal score maps into one via a weighted
// sum. A dish missing from a map simply contributes nothing for that signal,
// and a zero-weight signal adds no candidates of its own.
func FuseScores(profile, itemCF, popular ScoreMap, weights Weights) ScoreMap {
	fused := make(ScoreMap)
	add := func(scores ScoreMap, weight float64) {
		if weight == 0 {
			return
		}
		for dishID, score := range scores {
			fused[dishID] += weight * score
		}
	}
	add(profile, weights.Profile)
	add(itemCF, weights.ItemCF)
	add(popular, weights.Popular)
	return fused
}

// hydrate resolves ranked dish IDs into full records. A dish that can no
// longer be looked up is skipped, not fatal.
func (e *Engine) hydrate(ctx context.Context, ranked []ScoredDish) []domain.RecommendedDish {
	out := make([]domain.RecommendedDish, 0, len(ranked))
	for _, entry := range ranked {
		dish, err := e.dishes.DishByID(ctx, entry.DishID)
		if err != nil {
			e.log.Warn().Err(err).Int64("dish_id", entry.DishID).Msg("skipping unresolvable dish")
			continue
		}
		out = append(out, domain.RecommendedDish{
			DishID:     dish.ID,
			Name:       dish.Name,
			Price:      dish.Price,
			CategoryID: dish.CategoryID,
			Score:      entry.Score,
		})
	}
	return out
}
