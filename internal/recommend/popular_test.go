package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularityRaw(t *testing.T) {
	// Dish 100 has 10 order items in the window, dish 200 has 5.
	reader := &fakeInteractionReader{counts: []DishCount{
		{DishID: 100, Name: "Kung Pao Chicken", Count: 10},
		{DishID: 200, Name: "Mapo Tofu", Count: 5},
	}}
	scorer := NewPopularityScorer(reader, zerolog.Nop())

	counts := scorer.Raw(context.Background(), 2)

	require.Len(t, counts, 2)
	assert.Equal(t, int64(100), counts[0].DishID)
	assert.Equal(t, int64(10), counts[0].Count)
	assert.Equal(t, int64(200), counts[1].DishID)
	assert.Equal(t, int64(5), counts[1].Count)
}

func TestPopularityNormalized(t *testing.T) {
	reader := &fakeInteractionReader{counts: []DishCount{
		{DishID: 100, Count: 10},
		{DishID: 200, Count: 5},
	}}
	scorer := NewPopularityScorer(reader, zerolog.Nop())

	scores := scorer.Normalized(context.Background(), 2)

	require.Len(t, scores, 2)
	assert.InDelta(t, 0.667, scores[100], 1e-3)
	assert.InDelta(t, 0.333, scores[200], 1e-3)
	assert.InDelta(t, 1.0, scores[100]+scores[200], 1e-6)
}

func TestPopularityRespectsLimit(t *testing.T) {
	reader := &fakeInteractionReader{counts: []DishCount{
		{DishID: 1, Count: 9}, {DishID: 2, Count: 8}, {DishID: 3, Count: 7},
	}}
	scorer := NewPopularityScorer(reader, zerolog.Nop())

	assert.Len(t, scorer.Raw(context.Background(), 2), 2)
	assert.Len(t, scorer.Normalized(context.Background(), 2), 2)
}

func TestPopularityReadFailure(t *testing.T) {
	reader := &fakeInteractionReader{err: errors.New("store unavailable")}
	scorer := NewPopularityScorer(reader, zerolog.Nop())

	assert.Empty(t, scorer.Raw(context.Background(), 5))
	assert.Empty(t, scorer.Normalized(context.Background(), 5))
}

func TestPopularityNoData(t *testing.T) {
	scorer := NewPopularityScorer(&fakeInteractionReader{}, zerolog.Nop())

	assert.Empty(t, scorer.Raw(context.Background(), 5))
	assert.Empty(t, scorer.Normalized(context.Background(), 5))
}
