package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialDecayBoundaries(t *testing.T) {
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	last := first.Add(30 * 24 * time.Hour)

	assert.InDelta(t, 1.0, ExponentialDecay(first, first, last, 1.0), 1e-9,
		"earliest event carries full weight")
	assert.InDelta(t, math.Exp(-1.0), ExponentialDecay(last, first, last, 1.0), 1e-9,
		"latest event decays to exp(-contribution)")
	assert.InDelta(t, math.Exp(-0.5), ExponentialDecay(first.Add(15*24*time.Hour), first, last, 1.0), 1e-9)
	assert.InDelta(t, math.Exp(-2.0), ExponentialDecay(last, first, last, 2.0), 1e-9)
}

func TestExponentialDecaySingleSession(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A collapsed history span means no attenuation, regardless of the event.
	assert.Equal(t, 1.0, ExponentialDecay(ts, ts, ts, 1.0))
	assert.Equal(t, 1.0, ExponentialDecay(ts.Add(time.Hour), ts, ts, 5.0))
}

func TestExponentialDecayMissingTimestamps(t *testing.T) {
	ts := time.Now()

	assert.Equal(t, 1.0, ExponentialDecay(time.Time{}, ts, ts.Add(time.Hour), 1.0))
	assert.Equal(t, 1.0, ExponentialDecay(ts, time.Time{}, ts.Add(time.Hour), 1.0))
	assert.Equal(t, 1.0, ExponentialDecay(ts, ts, time.Time{}, 1.0))
}

func TestSigmoidContribution(t *testing.T) {
	assert.InDelta(t, 0.5, SigmoidContribution(3, DefaultSigmoidThreshold), 1e-9,
		"weight is exactly 0.5 at the threshold")
	assert.Greater(t, SigmoidContribution(10, DefaultSigmoidThreshold), 0.99)
	assert.Less(t, SigmoidContribution(0, DefaultSigmoidThreshold), 0.05)

	// Monotonic in the co-occurrence count.
	prev := 0.0
	for c := 0.0; c <= 10; c++ {
		cur := SigmoidContribution(c, DefaultSigmoidThreshold)
		assert.Greater(t, cur, prev)
		assert.Greater(t, cur, 0.0)
		assert.Less(t, cur, 1.0)
		prev = cur
	}
}

func TestLinearDecay(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 1.0, LinearDecay(now, now, 30), 1e-9)
	assert.InDelta(t, 0.5, LinearDecay(now.AddDate(0, 0, -15), now, 30), 1e-9)
	assert.Equal(t, 0.0, LinearDecay(now.AddDate(0, 0, -31), now, 30),
		"events past the half life floor at zero")
	assert.Equal(t, 1.0, LinearDecay(time.Time{}, now, 30))
	assert.Equal(t, 1.0, LinearDecay(now, time.Time{}, 30))
}
