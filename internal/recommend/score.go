package recommend

import "sort"

// ScoreMap maps dish IDs to non-negative signal scores. Ordering is applied
// only when materializing a ranked list via TopN.
type ScoreMap map[int64]float64

// Normalize rescales the map so its values sum to 1.0. An empty input yields
// an empty map. A zero total falls back to a divisor of 1.0 so the call is
// always safe.
func (m ScoreMap) Normalize() ScoreMap {
	out := make(ScoreMap, len(m))
	if len(m) == 0 {
		return out
	}
	total := 0.0
	for _, v := range m {
		total += v
	}
	if total == 0 {
		total = 1.0
	}
	for id, v := range m {
		out[id] = v / total
	}
	return out
}

// ScoredDish is one (dish, score) entry of a ranked result.
type ScoredDish struct {
	DishID int64   `json:"dish_id"`
	Score  float64 `json:"score"`
}

// TopN ranks the map descending by score, breaking ties by ascending dish ID
// so results are stable across runs, and truncates to n entries.
func (m ScoreMap) TopN(n int) []ScoredDish {
	ranked := make([]ScoredDish, 0, len(m))
	for id, score := range m {
		ranked = append(ranked, ScoredDish{DishID: id, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].DishID < ranked[j].DishID
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
