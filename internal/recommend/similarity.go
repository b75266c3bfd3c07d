package recommend

import (
	"math"
	"sort"
)

// Purchase is one distinct (user, dish) interaction fact.
type Purchase struct {
	UserID int64
	DishID int64
}

// SimilarityMap is a sparse dish-to-dish similarity matrix. Entries are
// symmetric, a dish never maps to itself, and zero similarities are omitted.
type SimilarityMap map[int64]map[int64]float64

// BuildSimilarity computes cosine similarity over 0/1 purchase indicator
// vectors:
//
//	sim(a, b) = |users(a) ∩ users(b)| / sqrt(|users(a)| * |users(b)|)
//
// Only dish pairs sharing at least one purchasing user get an entry.
// Recomputed fresh on every call; callers needing repeated use across
// requests cache the result externally.
func BuildSimilarity(purchases []Purchase) SimilarityMap {
	dishUsers := make(map[int64]map[int64]struct{})
	for _, p := range purchases {
		users, ok := dishUsers[p.DishID]
		if !ok {
			users = make(map[int64]struct{})
			dishUsers[p.DishID] = users
		}
		users[p.UserID] = struct{}{}
	}

	sim := make(SimilarityMap)
	if len(dishUsers) == 0 {
		return sim
	}

	dishes := make([]int64, 0, len(dishUsers))
	for id := range dishUsers {
		dishes = append(dishes, id)
	}
	sort.Slice(dishes, func(i, j int) bool { return dishes[i] < dishes[j] })

	for i, a := range dishes {
		for _, b := range dishes[i+1:] {
			usersA := dishUsers[a]
			usersB := dishUsers[b]

			// Intersect the smaller set against the larger one.
			small, large := usersA, usersB
			if len(large) < len(small) {
				small, large = large, small
			}
			intersection := 0
			for u := range small {
				if _, ok := large[u]; ok {
					intersection++
				}
			}
			if intersection == 0 {
				continue
			}

			score := float64(intersection) / math.Sqrt(float64(len(usersA))*float64(len(usersB)))
			if sim[a] == nil {
				sim[a] = make(map[int64]float64)
			}
			if sim[b] == nil {
				sim[b] = make(map[int64]float64)
			}
			sim[a][b] = score
			sim[b][a] = score
		}
	}
	return sim
}
