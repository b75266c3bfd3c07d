package recommend

import "errors"

// Strategy selects which signal (or fusion of signals) produces a ranking.
type Strategy int

const (
	// StrategyAuto defers to the configured default strategy.
	StrategyAuto Strategy = iota
	// StrategyPopular ranks by recent order-item volume alone.
	StrategyPopular
	// StrategyUserCF ranks by item-similarity collaborative filtering.
	StrategyUserCF
	// StrategyProfile ranks the user's preferred category's best sellers.
	StrategyProfile
	// StrategyItemCFTime is collaborative filtering with time-decay weighting.
	StrategyItemCFTime
	// StrategyWeighted fuses profile, item-similarity and popularity scores.
	StrategyWeighted
)

// ParseStrategy maps a caller-supplied strategy name onto the closed
// strategy set. Unknown names fall back to StrategyAuto, which resolves to
// the configured default fusion rather than erroring.
func ParseStrategy(name string) Strategy {
	switch name {
	case "", "auto":
		return StrategyAuto
	case "popular":
		return StrategyPopular
	case "usercf":
		return StrategyUserCF
	case "profile", "profile_based":
		return StrategyProfile
	case "item_cf_time":
		return StrategyItemCFTime
	case "weighted":
		return StrategyWeighted
	default:
		return StrategyAuto
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyPopular:
		return "popular"
	case StrategyUserCF:
		return "usercf"
	case StrategyProfile:
		return "profile"
	case StrategyItemCFTime:
		return "item_cf_time"
	case StrategyWeighted:
		return "weighted"
	default:
		return "auto"
	}
}

// ErrInvalidWeights is returned when caller-supplied fusion weights do not
// sum to 1.0 within WeightSumTolerance.
var ErrInvalidWeights = errors.New("fusion weights must sum to 1.0")

// WeightSumTolerance is the allowed deviation of a weight triple's sum
// from 1.0.
const WeightSumTolerance = 1e-4

// Weights is the fusion weight triple for the profile, item-similarity and
// popularity signals.
type Weights struct {
	Profile float64
	ItemCF  float64
	Popular float64
}

func (w Weights) Validate() error {
	sum := w.Profile + w.ItemCF + w.Popular
	if sum-1.0 > WeightSumTolerance || 1.0-sum > WeightSumTolerance {
		return ErrInvalidWeights
	}
	return nil
}
