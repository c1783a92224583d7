package engine

import (
	"math"

	"dealscope/internal/domain"
)

// Overall blend across the four axes, in hundredths so the weighted mean
// rounds exactly.
const (
	locationAxisWeight    = 30
	marketAxisWeight      = 25
	operationalAxisWeight = 25
	financialAxisWeight   = 20
)

// ComputeScores combines the reconciled signals into the four calibrated
// sub-scores and their weighted overall. The location breakdown comes from
// CalculateLocationScore when available; otherwise the legacy fallback
// formula applies. Missing bundles zero their contribution rather than
// erroring, so the overall degrades toward the conservative side.
func ComputeScores(snap domain.Snapshot, loc *domain.LocationBreakdown, coherenceScore int) domain.ScoreBreakdown {
	b := domain.ScoreBreakdown{
		Location:    locationScore(snap, loc),
		Market:      marketScore(snap),
		Operational: operationalScore(snap),
		Financial:   financialScore(snap, coherenceScore),
	}

	b.Overall = domain.ClampScore(int(math.Round(float64(
		b.Location*locationAxisWeight+
			b.Market*marketAxisWeight+
			b.Operational*operationalAxisWeight+
			b.Financial*financialAxisWeight) / 100)))
	b.Level = domain.ScoreLevelFor(b.Overall)
	return b
}

// locationScore prefers the nested breakdown; the legacy fallback combines
// the demographic score (0-40), a trade-area population tier (0-30) and a
// map-match score (0-30).
func locationScore(snap domain.Snapshot, loc *domain.LocationBreakdown) int {
	if loc != nil {
		return domain.ClampScore(loc.Score)
	}

	score := 0
	if snap.Demographic != nil {
		score += snap.Demographic.DemographicScore * 40 / 100
		score += populationTier(snap.Demographic.TradeAreaPotential.Population500m)
	}
	score += mapMatchScore(snap.Places)
	return domain.ClampScore(score)
}

func populationTier(pop int) int {
	switch {
	case pop >= busyZonePopulation:
		return 30
	case pop >= 1500:
		return 20
	case pop >= quietZonePopulation:
		return 10
	default:
		return 0
	}
}

func mapMatchScore(places *domain.PlacesReport) int {
	switch {
	case places == nil || !places.Found:
		return 0
	case places.Location.IsZero():
		return 20
	default:
		return 30
	}
}

// marketScore blends reputation (rating out of 5, worth 40), review volume
// (3-20) and inverse competitor density (5-40).
func marketScore(snap domain.Snapshot) int {
	score := 0
	if snap.Places != nil && snap.Places.Found {
		score += int(math.Round(snap.Places.Rating / 5 * 40))
		score += reviewVolumePoints(snap.Places.UserRatingsTotal)
	}
	if snap.Competitor != nil {
		score += densityPoints(snap.Competitor.DensityLevel)
	}
	return domain.ClampScore(score)
}

func reviewVolumePoints(count int) int {
	switch {
	case count >= 100:
		return 20
	case count >= 50:
		return 17
	case count >= 20:
		return 14
	case count >= 10:
		return 10
	case count >= 5:
		return 7
	default:
		return 3
	}
}

func densityPoints(level domain.DensityLevel) int {
	switch level {
	case domain.DensityVeryLow:
		return 40
	case domain.DensityLow:
		return 30
	case domain.DensityMedium:
		return 20
	case domain.DensityHigh:
		return 10
	case domain.DensityVeryHigh:
		return 5
	default:
		// Unreported density reads as a middling market.
		return 20
	}
}

// operationalScore blends the photographed condition (out of 10, worth 60)
// with the inverse renovation budget (0-40). An unanalyzed target scores 0:
// an unknown state of the premises cannot support a confident acquisition.
func operationalScore(snap domain.Snapshot) int {
	if snap.Photo == nil || !snap.Photo.Analyzed {
		return 0
	}
	score := int(math.Round(snap.Photo.Condition.OverallNote / 10 * 60))
	score += renovationBudgetPoints(snap.Photo.RenovationBudget.High)
	return domain.ClampScore(score)
}

func renovationBudgetPoints(high float64) int {
	switch {
	case high <= 10000:
		return 40
	case high <= 25000:
		return 32
	case high <= 50000:
		return 24
	case high <= 75000:
		return 16
	case high <= 100000:
		return 8
	default:
		return 0
	}
}

// financialScore blends signal coherence (worth 50) with the potential/
// investment ratio: how the zone's demographic promise compares to the
// renovation bill.
func financialScore(snap domain.Snapshot, coherenceScore int) int {
	score := int(math.Round(float64(coherenceScore) / 100 * 50))

	demoScore := 0
	if snap.Demographic != nil {
		demoScore = snap.Demographic.DemographicScore
	}
	budget := 0.0
	if snap.Photo != nil && snap.Photo.Analyzed {
		budget = snap.Photo.RenovationBudget.High
	}
	score += potentialPoints(demoScore, budget)
	return domain.ClampScore(score)
}

// potentialPoints is the five-tier potential/investment table.
func potentialPoints(demoScore int, budgetHigh float64) int {
	switch {
	case demoScore >= 75 && budgetHigh <= 25000:
		return 50 // strong zone, light works
	case demoScore >= 75 && budgetHigh <= 50000:
		return 40 // strong zone, recoverable premises
	case demoScore >= 60 && budgetHigh <= 50000:
		return 30
	case demoScore >= 50:
		return 20
	default:
		return 5
	}
}
