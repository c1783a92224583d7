package engine

import (
	"testing"

	"dealscope/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreInput(location, market, operational, financial, overall int) domain.ScoreInput {
	return domain.NewScoreInput(domain.ScoreBreakdown{
		Location:    location,
		Market:      market,
		Operational: operational,
		Financial:   financial,
		Overall:     overall,
	})
}

func TestCategorizeRisksWeakDossier(t *testing.T) {
	scores := scoreInput(45, 40, 35, 38, 40)
	in := RiskInput{
		Scores: &scores,
		Snapshot: domain.Snapshot{
			Photo: &domain.PhotoAssessment{
				Analyzed:         true,
				RenovationBudget: domain.BudgetEstimate{Low: 60000, High: 85000},
			},
		},
	}

	got := CategorizeRisks(in)

	assert.Empty(t, got.Error)
	assert.Equal(t, 3, got.CountBySeverity(domain.SeverityHigh),
		"location, market and operational each miss the viability bar")
	assert.Equal(t, 3, got.CountBySeverity(domain.SeverityCritical),
		"budget, financial and overall")
	assert.Equal(t, 0, got.RiskScore, "100 - 3*15 - 3*25 floors at zero")
	assert.Equal(t, domain.RiskLevelCritical, got.OverallLevel)
	assert.True(t, got.Blocking)

	var budgetRisks []domain.Risk
	for _, r := range got.Risks {
		if r.Category == domain.RiskOperational && r.Severity == domain.SeverityCritical {
			budgetRisks = append(budgetRisks, r)
		}
	}
	require.Len(t, budgetRisks, 1, "the exclusive budget bands yield one budget risk")
	assert.Equal(t, 85000.0, budgetRisks[0].CostEstimate)
}

func TestCategorizeRisksHealthyDossier(t *testing.T) {
	scores := scoreInput(91, 98, 94, 100, 95)
	got := CategorizeRisks(RiskInput{Scores: &scores, Snapshot: healthySnapshot()})

	assert.Empty(t, got.Risks)
	assert.Equal(t, 100, got.RiskScore)
	assert.Equal(t, domain.RiskLevelLow, got.OverallLevel)
	assert.False(t, got.Blocking)
}

func TestCategorizeRisksInputValidation(t *testing.T) {
	t.Run("nil scores degrade instead of panicking", func(t *testing.T) {
		got := CategorizeRisks(RiskInput{})

		assert.NotEmpty(t, got.Error)
		assert.Empty(t, got.Risks)
		assert.Equal(t, 0, got.RiskScore)
		assert.Equal(t, domain.RiskLevelCritical, got.OverallLevel)
		assert.True(t, got.Blocking, "an unassessable dossier must not pass")
	})

	t.Run("missing sub-score is named in the error", func(t *testing.T) {
		scores := scoreInput(80, 80, 80, 80, 80)
		scores.Market = nil

		got := CategorizeRisks(RiskInput{Scores: &scores})
		assert.Contains(t, got.Error, "market")
		assert.True(t, got.Blocking)
	})

	t.Run("overall is optional", func(t *testing.T) {
		scores := scoreInput(80, 80, 80, 80, 0)
		scores.Overall = nil

		got := CategorizeRisks(RiskInput{Scores: &scores})
		assert.Empty(t, got.Error)
	})
}

func TestBudgetBandsAreExclusive(t *testing.T) {
	cases := []struct {
		budget float64
		want   domain.Severity
	}{
		{90000, domain.SeverityCritical},
		{75000.01, domain.SeverityCritical},
		{75000, domain.SeverityHigh},
		{60000, domain.SeverityHigh},
		{50000, domain.SeverityMedium},
		{30000, domain.SeverityMedium},
	}

	for _, tc := range cases {
		scores := scoreInput(80, 80, 80, 80, 80)
		got := CategorizeRisks(RiskInput{
			Scores: &scores,
			Snapshot: domain.Snapshot{
				Photo: &domain.PhotoAssessment{
					Analyzed:         true,
					RenovationBudget: domain.BudgetEstimate{High: tc.budget},
				},
			},
		})

		require.Len(t, got.Risks, 1, "budget %.2f", tc.budget)
		assert.Equal(t, tc.want, got.Risks[0].Severity, "budget %.2f", tc.budget)
		assert.Equal(t, tc.budget, got.Risks[0].CostEstimate)
	}

	t.Run("a light refresh carries no budget risk", func(t *testing.T) {
		scores := scoreInput(80, 80, 80, 80, 80)
		got := CategorizeRisks(RiskInput{
			Scores: &scores,
			Snapshot: domain.Snapshot{
				Photo: &domain.PhotoAssessment{
					Analyzed:         true,
					RenovationBudget: domain.BudgetEstimate{High: 25000},
				},
			},
		})
		assert.Empty(t, got.Risks)
	})
}

func TestUnresolvedBlockingConflictsRisk(t *testing.T) {
	scores := scoreInput(80, 80, 80, 80, 80)
	open := conflictOf("c-1", domain.ConflictGeographic, domain.SeverityCritical, nil)
	settled := conflictOf("c-2", domain.ConflictRatingPhotos, domain.SeverityHigh, nil)
	settled.Resolved = true

	got := CategorizeRisks(RiskInput{
		Scores:    &scores,
		Conflicts: []domain.Conflict{open, settled},
	})

	require.Len(t, got.Risks, 1)
	assert.Equal(t, domain.RiskFinancial, got.Risks[0].Category)
	assert.Equal(t, domain.SeverityHigh, got.Risks[0].Severity)
	assert.Contains(t, got.Risks[0].Description, "1 blocking conflict")
}

func TestRiskLevelRules(t *testing.T) {
	t.Run("two HIGH block without reaching critical", func(t *testing.T) {
		scores := scoreInput(45, 40, 80, 80, 80)
		got := CategorizeRisks(RiskInput{Scores: &scores})

		assert.Equal(t, 2, got.CountBySeverity(domain.SeverityHigh))
		assert.Equal(t, domain.RiskLevelHigh, got.OverallLevel)
		assert.True(t, got.Blocking)
	})

	t.Run("three HIGH escalate to critical", func(t *testing.T) {
		scores := scoreInput(45, 40, 35, 80, 80)
		got := CategorizeRisks(RiskInput{Scores: &scores})

		assert.Equal(t, domain.RiskLevelCritical, got.OverallLevel)
		assert.True(t, got.Blocking)
	})

	t.Run("two MEDIUM are moderate and non-blocking", func(t *testing.T) {
		scores := scoreInput(80, 80, 80, 80, 80)
		got := CategorizeRisks(RiskInput{
			Scores: &scores,
			Snapshot: domain.Snapshot{
				Demographic: &domain.DemographicReport{
					TradeAreaPotential: domain.TradeAreaPotential{Population500m: 400},
				},
				Places: &domain.PlacesReport{Found: false},
			},
		})

		assert.Equal(t, 2, got.CountBySeverity(domain.SeverityMedium))
		assert.Equal(t, domain.RiskLevelModerate, got.OverallLevel)
		assert.False(t, got.Blocking)
	})

	t.Run("one MEDIUM stays low", func(t *testing.T) {
		scores := scoreInput(80, 80, 80, 80, 80)
		got := CategorizeRisks(RiskInput{
			Scores: &scores,
			Snapshot: domain.Snapshot{
				Places: &domain.PlacesReport{Found: false},
			},
		})
		assert.Equal(t, domain.RiskLevelLow, got.OverallLevel)
	})
}

func TestCategorizeRisksDeterminism(t *testing.T) {
	scores := scoreInput(45, 40, 35, 38, 40)
	in := RiskInput{Scores: &scores, Snapshot: healthySnapshot()}

	first := CategorizeRisks(in)
	second := CategorizeRisks(in)
	assert.Equal(t, first, second)
}
