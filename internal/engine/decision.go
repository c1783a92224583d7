package engine

import "dealscope/internal/domain"

// Decision thresholds on the adjusted score, and the bound on the summed
// strategic adjustments.
const (
	goThreshold       = 75
	reservesThreshold = 50

	maxAdjustment = 10
	minAdjustment = -10
)

// AggregateDecision applies the bounded strategic adjustments to the base
// score and emits the final recommendation. The adjustment sum is clamped to
// [-10,+10] before application; the adjusted score is clamped to [0,100].
// A GO is downgraded to GO_WITH_RESERVES while any CRITICAL risk stands,
// regardless of the numeric score.
func AggregateDecision(baseScore int, adjustments []domain.Adjustment, criticalRiskOpen bool) domain.Decision {
	sum := 0
	for _, adj := range adjustments {
		sum += adj.Points
	}
	if sum > maxAdjustment {
		sum = maxAdjustment
	}
	if sum < minAdjustment {
		sum = minAdjustment
	}

	adjusted := domain.ClampScore(baseScore + sum)

	var rec domain.Recommendation
	switch {
	case adjusted >= goThreshold:
		rec = domain.RecommendationGo
	case adjusted >= reservesThreshold:
		rec = domain.RecommendationGoWithReserves
	default:
		rec = domain.RecommendationNoGo
	}

	if rec == domain.RecommendationGo && criticalRiskOpen {
		rec = domain.RecommendationGoWithReserves
	}

	if adjustments == nil {
		adjustments = []domain.Adjustment{}
	}
	return domain.Decision{
		Recommendation: rec,
		Score:          adjusted,
		ScoreBreakdown: domain.AdjustmentTrail{
			BaseScore:     baseScore,
			Adjustments:   adjustments,
			AdjustedScore: adjusted,
		},
	}
}
