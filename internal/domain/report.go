package domain

import "time"

// Report is the full output of one evaluation run, shaped for the downstream
// report renderer. All scores are integers in [0,100] except resolution
// confidences, which are floats in [0,1].
type Report struct {
	// ID identifies the run so the API can list and retrieve recent reports.
	ID    string `json:"id"`
	Valid bool   `json:"valid"`

	CoherenceScore int            `json:"coherence_score"`
	CoherenceLevel CoherenceLevel `json:"coherence_level"`

	Conflicts   []Conflict   `json:"conflicts"`
	Resolutions []Resolution `json:"resolutions"`
	Arbitration GoNoGoImpact `json:"go_no_go_impact"`

	Scores ScoreBreakdown `json:"scores"`

	Risks            []Risk    `json:"risks"`
	RiskScore        int       `json:"risk_score"`
	OverallRiskLevel RiskLevel `json:"overall_risk_level"`

	Decision Decision `json:"decision"`

	// Errors collects structured degradation notes (missing or malformed
	// inputs). A non-empty list never aborts the run; it biases the decision
	// toward the conservative side.
	Errors []string `json:"errors,omitempty"`

	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Summary is the lightweight listing form of a report.
type Summary struct {
	ID             string         `json:"id"`
	Recommendation Recommendation `json:"recommendation"`
	Score          int            `json:"score"`
	CoherenceScore int            `json:"coherence_score"`
	RiskScore      int            `json:"risk_score"`
	ConflictCount  int            `json:"conflict_count"`
	EvaluatedAt    time.Time      `json:"evaluated_at"`
}

// Summarize produces the listing form of the report.
func (r Report) Summarize() Summary {
	return Summary{
		ID:             r.ID,
		Recommendation: r.Decision.Recommendation,
		Score:          r.Decision.Score,
		CoherenceScore: r.CoherenceScore,
		RiskScore:      r.RiskScore,
		ConflictCount:  len(r.Conflicts),
		EvaluatedAt:    r.EvaluatedAt,
	}
}
