package engine

import (
	"math"

	"dealscope/internal/domain"
)

// Coherence blend: conflict penalties dominate, completeness tempers.
// Expressed in tenths so half-point blends round exactly.
const (
	conflictWeightTenths     = 7
	completenessWeightTenths = 3
)

// ScoreCoherence reduces the conflict set and collector completeness to one
// 0-100 coherence score. The conflict side starts at 100 and pays each
// conflict's severity weight, floored at 0. Completeness is the share of the
// five collectors that delivered a bundle; a nil map counts as fully
// complete.
func ScoreCoherence(conflicts []domain.Conflict, completeness map[string]bool) domain.CoherenceAssessment {
	conflictScore := 100
	blocking := 0
	for _, c := range conflicts {
		conflictScore -= c.Severity.Weight()
		if c.IsBlocking() {
			blocking++
		}
	}
	if conflictScore < 0 {
		conflictScore = 0
	}

	completenessScore := 100.0
	if completeness != nil {
		completed := 0
		for _, name := range domain.AgentNames {
			if completeness[name] {
				completed++
			}
		}
		completenessScore = float64(completed) / float64(len(domain.AgentNames)) * 100
	}

	score := int(math.Round((float64(conflictScore*conflictWeightTenths) + completenessScore*completenessWeightTenths) / 10))
	level := domain.CoherenceLevelFor(score)

	return domain.CoherenceAssessment{
		Score:               score,
		Level:               level,
		Reliability:         level.Reliability(),
		RequiresArbitration: blocking > 0 || level == domain.CoherencePoor,
	}
}
