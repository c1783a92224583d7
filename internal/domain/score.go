package domain

// ScoreLevel is the qualitative band of a 0-100 score breakdown.
type ScoreLevel string

const (
	ScoreExcellent ScoreLevel = "excellent"
	ScoreGood      ScoreLevel = "good"
	ScoreFair      ScoreLevel = "fair"
	ScorePoor      ScoreLevel = "poor"
)

// ScoreLevelFor bands an overall score.
func ScoreLevelFor(score int) ScoreLevel {
	switch {
	case score >= 80:
		return ScoreExcellent
	case score >= 65:
		return ScoreGood
	case score >= 50:
		return ScoreFair
	default:
		return ScorePoor
	}
}

// ClampScore bounds a score to [0,100].
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// LocationBreakdown is the nested location sub-score: commercial synergy,
// demographic quality and competitor pressure, blended 50/30/20.
type LocationBreakdown struct {
	Synergy     int `json:"synergy"`
	Demographic int `json:"demographic"`
	Competitor  int `json:"competitor"`
	Score       int `json:"score"`
}

// ScoreBreakdown holds the four calibrated sub-scores and their weighted
// overall, each clamped to [0,100].
type ScoreBreakdown struct {
	Location    int        `json:"location"`
	Market      int        `json:"market"`
	Operational int        `json:"operational"`
	Financial   int        `json:"financial"`
	Overall     int        `json:"overall"`
	Level       ScoreLevel `json:"level"`
}

// ScoreInput is the externally-supplied form of a score breakdown, where any
// sub-score may be absent. The risk categorizer validates it before use.
type ScoreInput struct {
	Location    *int `json:"location,omitempty"`
	Market      *int `json:"market,omitempty"`
	Operational *int `json:"operational,omitempty"`
	Financial   *int `json:"financial,omitempty"`
	Overall     *int `json:"overall,omitempty"`
}

// NewScoreInput converts a computed breakdown into the input form.
func NewScoreInput(b ScoreBreakdown) ScoreInput {
	loc, mkt, ops, fin, all := b.Location, b.Market, b.Operational, b.Financial, b.Overall
	return ScoreInput{
		Location:    &loc,
		Market:      &mkt,
		Operational: &ops,
		Financial:   &fin,
		Overall:     &all,
	}
}

// MissingFields lists the required sub-scores that are absent. Overall is
// derivable and therefore optional.
func (s ScoreInput) MissingFields() []string {
	var missing []string
	if s.Location == nil {
		missing = append(missing, "location")
	}
	if s.Market == nil {
		missing = append(missing, "market")
	}
	if s.Operational == nil {
		missing = append(missing, "operational")
	}
	if s.Financial == nil {
		missing = append(missing, "financial")
	}
	return missing
}

// CoherenceLevel bands the mutual-consistency score of the input bundles.
type CoherenceLevel string

const (
	CoherenceExcellent CoherenceLevel = "excellent"
	CoherenceGood      CoherenceLevel = "good"
	CoherenceMedium    CoherenceLevel = "medium"
	CoherencePoor      CoherenceLevel = "poor"
)

// CoherenceLevelFor bands a 0-100 coherence score.
func CoherenceLevelFor(score int) CoherenceLevel {
	switch {
	case score >= 85:
		return CoherenceExcellent
	case score >= 70:
		return CoherenceGood
	case score >= 50:
		return CoherenceMedium
	default:
		return CoherencePoor
	}
}

// Reliability maps the coherence level to a data-reliability label.
func (l CoherenceLevel) Reliability() string {
	switch l {
	case CoherenceExcellent, CoherenceGood:
		return "high"
	case CoherenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// CoherenceAssessment is the coherence scorer's output.
type CoherenceAssessment struct {
	Score               int            `json:"score"`
	Level               CoherenceLevel `json:"level"`
	Reliability         string         `json:"reliability"`
	RequiresArbitration bool           `json:"requires_arbitration"`
}
