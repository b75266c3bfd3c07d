package recommend

import (
	"math"
	"time"
)

// DefaultSigmoidThreshold is the co-occurrence count below which
// SigmoidContribution attenuates quickly.
const DefaultSigmoidThreshold = 3.0

const secondsPerDay = 86400.0

// ExponentialDecay computes the time weight
//
//	exp(-contribution * (tEvent - tFirst) / (tLast - tFirst))
//
// positioning tEvent within the [tFirst, tLast] span of a user's history:
// 1.0 at the start of the span, exp(-contribution) at the end. When the span
// collapses (tFirst == tLast) or any timestamp is missing, the weight is 1.0.
func ExponentialDecay(tEvent, tFirst, tLast time.Time, contribution float64) float64 {
	if tEvent.IsZero() || tFirst.IsZero() || tLast.IsZero() {
		return 1.0
	}
	span := tLast.Sub(tFirst).Seconds()
	if span == 0 {
		return 1.0
	}
	ratio := tEvent.Sub(tFirst).Seconds() / span
	return math.Exp(-contribution * ratio)
}

// SigmoidContribution maps a co-occurrence count against a credibility
// threshold to a confidence weight in (0, 1). At the threshold the weight
// is exactly 0.5.
func SigmoidContribution(coCount, threshold float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(coCount - threshold)))
}

// LinearDecay weights an event linearly by its age relative to now,
// reaching zero after halfLifeDays. Missing timestamps yield 1.0.
func LinearDecay(tEvent, now time.Time, halfLifeDays float64) float64 {
	if tEvent.IsZero() || now.IsZero() || halfLifeDays <= 0 {
		return 1.0
	}
	deltaDays := now.Sub(tEvent).Seconds() / secondsPerDay
	return math.Max(0.0, 1.0-deltaDays/halfLifeDays)
}
