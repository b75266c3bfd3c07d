package recommend

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PopularityWindow is the trailing window over which order-item volume is
// counted.
const PopularityWindow = 30 * 24 * time.Hour

// PopularityScorer ranks dishes by recent order-item volume. Raw counts feed
// display rankings; normalized scores feed fusion, where signals from
// heterogeneous sources must share a comparable scale.
type PopularityScorer struct {
	reader InteractionReader
	log    zerolog.Logger
}

func NewPopularityScorer(reader InteractionReader, log zerolog.Logger) *PopularityScorer {
	return &PopularityScorer{reader: reader, log: log}
}

// Raw returns the top-limit dishes by order-item count in the window,
// descending by count with ties broken by ascending dish ID. A read failure
// degrades to an empty list.
func (s *PopularityScorer) Raw(ctx context.Context, limit int) []DishCount {
	counts, err := s.reader.DishOrderCounts(ctx, PopularityWindow, limit)
	if err != nil {
		s.log.Error().Err(err).Int("limit", limit).Msg("read popular dish counts")
		return nil
	}
	return counts
}

// Normalized returns the same top-limit set with counts rescaled to sum
// to 1.0, or an empty map when there is no signal.
func (s *PopularityScorer) Normalized(ctx context.Context, limit int) ScoreMap {
	counts, err := s.reader.DishOrderCounts(ctx, PopularityWindow, limit)
	if err != nil {
		s.log.Error().Err(err).Int("limit", limit).Msg("read popular dish scores")
		return ScoreMap{}
	}
	raw := make(ScoreMap, len(counts))
	for _, c := range counts {
		raw[c.DishID] = float64(c.Count)
	}
	return raw.Normalize()
}
