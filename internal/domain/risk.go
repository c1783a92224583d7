package domain

// RiskCategory groups risks along the four scoring axes.
type RiskCategory string

const (
	RiskLocation    RiskCategory = "location"
	RiskMarket      RiskCategory = "market"
	RiskOperational RiskCategory = "operational"
	RiskFinancial   RiskCategory = "financial"
)

// Risk is one entry in the derived risk register. Risks are recomputed from
// inputs, never persisted; identical inputs yield the identical set.
type Risk struct {
	Category    RiskCategory `json:"category"`
	Severity    Severity     `json:"severity"`
	Description string       `json:"description"`
	Impact      string       `json:"impact"`
	Mitigation  string       `json:"mitigation"`
	// CostEstimate carries a currency amount when the risk has a known
	// price tag (e.g. a renovation budget).
	CostEstimate float64 `json:"cost_estimate,omitempty"`
}

// RiskLevel is the overall band of the risk register.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// RiskAssessment is the risk categorizer's output. Error is set instead of
// panicking when the scores input is missing or incomplete; in that case the
// register is empty and Blocking is true so the decision degrades safely.
type RiskAssessment struct {
	Risks        []Risk    `json:"risks"`
	RiskScore    int       `json:"risk_score"`
	OverallLevel RiskLevel `json:"overall_risk_level"`
	Blocking     bool      `json:"blocking"`
	Error        string    `json:"error,omitempty"`
}

// CountBySeverity tallies register entries of the given severity.
func (a RiskAssessment) CountBySeverity(s Severity) int {
	n := 0
	for _, r := range a.Risks {
		if r.Severity == s {
			n++
		}
	}
	return n
}

// HasCritical reports whether any CRITICAL risk is on the register.
func (a RiskAssessment) HasCritical() bool {
	return a.CountBySeverity(SeverityCritical) > 0
}
