package recommend

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// ItemCFScorer produces candidate scores for dishes a user has not bought,
// based on co-purchase similarity to dishes they have. Every failure mode
// (no history, no similarity data, missing timestamps) degrades to an empty
// result; cold-start users are handled by other signals upstream.
type ItemCFScorer struct {
	reader InteractionReader
	log    zerolog.Logger
}

func NewItemCFScorer(reader InteractionReader, log zerolog.Logger) *ItemCFScorer {
	return &ItemCFScorer{reader: reader, log: log}
}

// Score accumulates, for each dish q the user has not purchased, the
// similarity of q to every dish the user has purchased, and returns the
// top-limit candidates.
func (s *ItemCFScorer) Score(ctx context.Context, userID int64, limit int) ScoreMap {
	purchased, sim, ok := s.load(ctx, userID)
	if !ok {
		return ScoreMap{}
	}
	weights := make(map[int64]float64, len(purchased))
	for dishID := range purchased {
		weights[dishID] = 1.0
	}
	return accumulate(purchased, sim, weights, limit)
}

// ScoreWithDecay is the time-weighted variant: each purchased dish's
// contribution is scaled by ExponentialDecay of its first purchase time
// positioned within the user's [t_first, t_last] history span. A user whose
// history collapses to a single instant gets no attenuation.
func (s *ItemCFScorer) ScoreWithDecay(ctx context.Context, userID int64, limit int) ScoreMap {
	purchased, sim, ok := s.load(ctx, userID)
	if !ok {
		return ScoreMap{}
	}

	firstPurchases, err := s.reader.UserFirstPurchases(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("read purchase timestamps")
		return ScoreMap{}
	}
	if len(firstPurchases) == 0 {
		s.log.Debug().Int64("user_id", userID).Msg("no purchase timestamps, skipping time-decay scoring")
		return ScoreMap{}
	}

	var tFirst, tLast time.Time
	for _, t := range firstPurchases {
		if tFirst.IsZero() || t.Before(tFirst) {
			tFirst = t
		}
		if tLast.IsZero() || t.After(tLast) {
			tLast = t
		}
	}

	weights := make(map[int64]float64, len(purchased))
	for dishID := range purchased {
		t, ok := firstPurchases[dishID]
		if !ok {
			continue
		}
		weights[dishID] = ExponentialDecay(t, tFirst, tLast, 1.0)
	}
	return accumulate(purchased, sim, weights, limit)
}

func (s *ItemCFScorer) load(ctx context.Context, userID int64) (map[int64]struct{}, SimilarityMap, bool) {
	purchased, err := s.reader.UserDishes(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("read user purchase history")
		return nil, nil, false
	}
	if len(purchased) == 0 {
		s.log.Debug().Int64("user_id", userID).Msg("no purchase history, skipping item similarity scoring")
		return nil, nil, false
	}

	pairs, err := s.reader.AllPurchases(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("read purchase pairs for similarity matrix")
		return nil, nil, false
	}
	sim := BuildSimilarity(pairs)
	if len(sim) == 0 {
		s.log.Debug().Msg("empty similarity matrix, skipping item similarity scoring")
		return nil, nil, false
	}
	return purchased, sim, true
}

// accumulate sums weighted similarities into candidate scores, keeping only
// dishes outside the purchase set, and truncates to the top-limit entries.
// Scores are rounded to four decimals.
func accumulate(purchased map[int64]struct{}, sim SimilarityMap, weights map[int64]float64, limit int) ScoreMap {
	scores := make(ScoreMap)
	for dishID := range purchased {
		weight, ok := weights[dishID]
		if !ok {
			continue
		}
		for related, similarity := range sim[dishID] {
			if _, bought := purchased[related]; bought {
				continue
			}
			scores[related] += similarity * weight
		}
	}

	top := make(ScoreMap, limit)
	for _, entry := range scores.TopN(limit) {
		top[entry.DishID] = math.Round(entry.Score*10000) / 10000
	}
	return top
}
