package engine

import (
	"testing"

	"dealscope/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestScoreCoherenceNoConflicts(t *testing.T) {
	got := ScoreCoherence(nil, nil)

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, domain.CoherenceExcellent, got.Level)
	assert.Equal(t, "high", got.Reliability)
	assert.False(t, got.RequiresArbitration)
}

func TestScoreCoherenceOneCriticalTwoHigh(t *testing.T) {
	conflicts := []domain.Conflict{
		{Severity: domain.SeverityCritical},
		{Severity: domain.SeverityHigh},
		{Severity: domain.SeverityHigh},
	}
	completeness := map[string]bool{
		domain.AgentDemographic: true,
		domain.AgentPlaces:      true,
		domain.AgentPhoto:       true,
		domain.AgentCompetitor:  true,
		domain.AgentPreparation: true,
	}

	// Conflict side: 100-25-15-15 = 45; blended with full completeness:
	// round(45*0.7 + 100*0.3) = 62.
	got := ScoreCoherence(conflicts, completeness)

	assert.Equal(t, 62, got.Score)
	assert.Equal(t, domain.CoherenceMedium, got.Level)
	assert.Equal(t, "medium", got.Reliability)
	assert.True(t, got.RequiresArbitration, "a CRITICAL conflict forces arbitration")
}

func TestScoreCoherenceFloorsAtZero(t *testing.T) {
	conflicts := make([]domain.Conflict, 6)
	for i := range conflicts {
		conflicts[i] = domain.Conflict{Severity: domain.SeverityCritical}
	}

	got := ScoreCoherence(conflicts, nil)

	// Conflict side floors at 0; completeness absent counts as 100.
	assert.Equal(t, 30, got.Score)
	assert.Equal(t, domain.CoherencePoor, got.Level)
	assert.Equal(t, "low", got.Reliability)
	assert.True(t, got.RequiresArbitration)
}

func TestScoreCoherencePartialCompleteness(t *testing.T) {
	completeness := map[string]bool{
		domain.AgentDemographic: true,
		domain.AgentPlaces:      true,
		domain.AgentPhoto:       false,
		domain.AgentCompetitor:  true,
		domain.AgentPreparation: false,
	}

	// 3/5 collectors done: round(100*0.7 + 60*0.3) = 88.
	got := ScoreCoherence(nil, completeness)

	assert.Equal(t, 88, got.Score)
	assert.Equal(t, domain.CoherenceExcellent, got.Level)
}

func TestScoreCoherenceLevels(t *testing.T) {
	cases := []struct {
		score int
		level domain.CoherenceLevel
	}{
		{85, domain.CoherenceExcellent},
		{84, domain.CoherenceGood},
		{70, domain.CoherenceGood},
		{69, domain.CoherenceMedium},
		{50, domain.CoherenceMedium},
		{49, domain.CoherencePoor},
		{0, domain.CoherencePoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, domain.CoherenceLevelFor(tc.score), "score %d", tc.score)
	}
}

func TestScoreCoherenceDeterministic(t *testing.T) {
	conflicts := []domain.Conflict{
		{Severity: domain.SeverityHigh},
		{Severity: domain.SeverityMedium},
	}
	first := ScoreCoherence(conflicts, nil)
	second := ScoreCoherence(conflicts, nil)
	assert.Equal(t, first, second)
}
