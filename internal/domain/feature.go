package domain

// Feature enumerates the meterable AI-backed actions.
type Feature string

const (
	FeatureStrategyGeneration  Feature = "STRATEGY_GENERATION"
	FeatureScriptGeneration    Feature = "SCRIPT_GENERATION"
	FeatureThumbnailGeneration Feature = "THUMBNAIL_GENERATION"
	FeatureChannelAnalysis     Feature = "CHANNEL_ANALYSIS"
)

// Features lists every meterable action. Cost schedules must cover all of them.
var Features = []Feature{
	FeatureStrategyGeneration,
	FeatureScriptGeneration,
	FeatureThumbnailGeneration,
	FeatureChannelAnalysis,
}

// CostSchedule maps a feature to its credit cost.
type CostSchedule map[Feature]int

// DefaultCostSchedule returns the costs the system boots with.
func DefaultCostSchedule() CostSchedule {
	return CostSchedule{
		FeatureStrategyGeneration:  1,
		FeatureScriptGeneration:    5,
		FeatureThumbnailGeneration: 3,
		FeatureChannelAnalysis:     10,
	}
}

// Validate checks that the schedule covers the closed feature enumeration with
// non-negative costs. A partial or negative schedule is rejected as a whole.
func (s CostSchedule) Validate() error {
	for _, f := range Features {
		cost, ok := s[f]
		if !ok {
			return ErrInvalidCostSchedule
		}
		if cost < 0 {
			return ErrInvalidCostSchedule
		}
	}
	if len(s) != len(Features) {
		return ErrInvalidCostSchedule
	}
	return nil
}

// Clone returns an independent copy so callers cannot mutate a committed schedule.
func (s CostSchedule) Clone() CostSchedule {
	out := make(CostSchedule, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
