package engine

import (
	"time"

	"dealscope/internal/domain"

	"github.com/google/uuid"
)

// Adjustment magnitudes. Each is individually bounded; the aggregator clamps
// the sum to [-10,+10] regardless.
const (
	hiddenPotentialBonus   = 8
	clearConditionsBonus   = 5
	criticalRiskPenaltyPer = -5
	criticalRiskPenaltyCap = -10
)

// Evaluator wires the pipeline stages over one snapshot. The embedded
// builder, arbitrator and clock are injectable for deterministic replays;
// zero configuration gives production behavior.
type Evaluator struct {
	Builder *ConflictBuilder
	Arbiter *Arbitrator
	NewID   func() string
	Now     func() time.Time
}

// NewEvaluator returns an evaluator with production defaults.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Builder: NewConflictBuilder(),
		Arbiter: NewArbitrator(),
		NewID:   uuid.NewString,
		Now:     time.Now,
	}
}

// Evaluate runs the full reconciliation and scoring pipeline:
// cross-validation, conflict building, coherence scoring and arbitration on
// one side; location, multi-dimensional and risk scoring on the other; and
// the decision aggregation last. It never returns an error: structural
// problems degrade the decision and surface in Report.Errors.
func (e *Evaluator) Evaluate(snap domain.Snapshot) domain.Report {
	issues := CrossValidate(snap)
	conflicts := e.Builder.Build(issues)

	coherence := ScoreCoherence(conflicts, snap.Completeness())
	arbitration := e.Arbiter.Arbitrate(conflicts)

	var locPtr *domain.LocationBreakdown
	if loc, ok := CalculateLocationScore(snap.Competitor, snap.Demographic); ok {
		locPtr = &loc
	}
	scores := ComputeScores(snap, locPtr, coherence.Score)

	scoreInput := domain.NewScoreInput(scores)
	risks := CategorizeRisks(RiskInput{
		Scores:    &scoreInput,
		Snapshot:  snap,
		Conflicts: arbitration.Conflicts,
	})

	adjustments := deriveAdjustments(snap, coherence, arbitration, risks)
	decision := AggregateDecision(scores.Overall, adjustments, risks.HasCritical())

	report := domain.Report{
		ID:               e.NewID(),
		Valid:            risks.Error == "",
		CoherenceScore:   coherence.Score,
		CoherenceLevel:   coherence.Level,
		Conflicts:        arbitration.Conflicts,
		Resolutions:      arbitration.Resolutions,
		Arbitration:      arbitration.Impact,
		Scores:           scores,
		Risks:            risks.Risks,
		RiskScore:        risks.RiskScore,
		OverallRiskLevel: risks.OverallLevel,
		Decision:         decision,
		EvaluatedAt:      e.Now().UTC(),
	}
	if report.Conflicts == nil {
		report.Conflicts = []domain.Conflict{}
	}
	if report.Resolutions == nil {
		report.Resolutions = []domain.Resolution{}
	}
	if report.Risks == nil {
		report.Risks = []domain.Risk{}
	}
	report.Errors = append(report.Errors, snap.DecodeFailures...)
	if risks.Error != "" {
		report.Errors = append(report.Errors, risks.Error)
	}
	return report
}

// deriveAdjustments produces the small strategic corrections layered on top
// of the base score.
func deriveAdjustments(snap domain.Snapshot, coherence domain.CoherenceAssessment,
	arbitration domain.ArbitrationOutcome, risks domain.RiskAssessment) []domain.Adjustment {

	var adjustments []domain.Adjustment

	// Hidden potential: a strong zone behind recoverable premises, with no
	// blocking signal left contested.
	if snap.Demographic != nil && snap.Photo != nil && snap.Photo.Analyzed {
		budget := snap.Photo.RenovationBudget.High
		if snap.Demographic.DemographicScore >= strongDemographicScore &&
			budget > budgetMediumThreshold && budget <= budgetHighThreshold &&
			arbitration.Impact.BlockingIssuesResolved {
			adjustments = append(adjustments, domain.Adjustment{
				Label:  "hidden_potential",
				Points: hiddenPotentialBonus,
			})
		}
	}

	// Clear success conditions: coherent signals and a calm risk register.
	if coherence.Level == domain.CoherenceExcellent &&
		risks.CountBySeverity(domain.SeverityCritical) == 0 &&
		risks.CountBySeverity(domain.SeverityHigh) == 0 {
		adjustments = append(adjustments, domain.Adjustment{
			Label:  "clear_success_conditions",
			Points: clearConditionsBonus,
		})
	}

	// Unresolved critical exposure drags the score down.
	if n := risks.CountBySeverity(domain.SeverityCritical); n > 0 {
		penalty := n * criticalRiskPenaltyPer
		if penalty < criticalRiskPenaltyCap {
			penalty = criticalRiskPenaltyCap
		}
		adjustments = append(adjustments, domain.Adjustment{
			Label:  "unresolved_critical_risks",
			Points: penalty,
		})
	}

	return adjustments
}
