package recommend

import (
	"context"

	"github.com/rs/zerolog"
)

// ProfileScorer recommends a category's best sellers based on the user's
// preferred cuisine: the explicitly recorded one when set, otherwise the
// category they have ordered from most. A user with neither yields an empty
// result (pure cold start).
type ProfileScorer struct {
	reader ProfileReader
	log    zerolog.Logger
}

func NewProfileScorer(reader ProfileReader, log zerolog.Logger) *ProfileScorer {
	return &ProfileScorer{reader: reader, log: log}
}

// Preference resolves the user's category preference, empty when none can be
// determined.
func (s *ProfileScorer) Preference(ctx context.Context, userID int64) string {
	explicit, err := s.reader.ExplicitPreference(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("read explicit preference")
	} else if explicit != "" {
		return explicit
	}

	inferred, err := s.reader.TopOrderedCategory(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("infer preference from order history")
		return ""
	}
	return inferred
}

// Score returns the preferred category's available dishes weighted by sales,
// normalized to sum to 1.0.
func (s *ProfileScorer) Score(ctx context.Context, userID int64, limit int) ScoreMap {
	preference := s.Preference(ctx, userID)
	if preference == "" {
		s.log.Debug().Int64("user_id", userID).Msg("no category preference, skipping profile scoring")
		return ScoreMap{}
	}

	dishes, err := s.reader.CategoryDishesBySales(ctx, preference, limit)
	if err != nil {
		s.log.Error().Err(err).Str("category", preference).Msg("read category dishes")
		return ScoreMap{}
	}

	raw := make(ScoreMap, len(dishes))
	for _, d := range dishes {
		raw[d.DishID] = float64(d.Sales)
	}
	return raw.Normalize()
}
