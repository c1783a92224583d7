package domain

// Recommendation is a terminal investment recommendation.
type Recommendation string

const (
	RecommendationGo             Recommendation = "GO"
	RecommendationNoGo           Recommendation = "NO-GO"
	RecommendationGoWithReserves Recommendation = "GO_WITH_RESERVES"
)

// Adjustment is one bounded strategic correction applied on top of the base
// score (e.g. resolved hidden potential, unresolved critical risks).
type Adjustment struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// AdjustmentTrail shows how the final score was derived from the base.
type AdjustmentTrail struct {
	BaseScore     int          `json:"base_score"`
	Adjustments   []Adjustment `json:"adjustments"`
	AdjustedScore int          `json:"adjusted_score"`
}

// Decision is the final bounded recommendation.
type Decision struct {
	Recommendation Recommendation  `json:"recommendation"`
	Score          int             `json:"score"`
	ScoreBreakdown AdjustmentTrail `json:"score_breakdown"`
}
