package engine

import (
	"math"

	"dealscope/internal/domain"
)

// Location blend and component thresholds.
const (
	synergyWeightTenths     = 5
	demoQualityWeightTenths = 3
	competitorWeightTenths  = 2

	locomotiveCloseM = 100.0
	locomotiveNearM  = 500.0
	clusterRadiusM   = 200.0
	clusterPOICount  = 5
	clusterBonus     = 10

	lowDensityPerKm2  = 500.0
	highDensityPerKm2 = 2000.0
	premiumIncome     = 32000.0
	deadZoneIncome    = 25000.0

	competitorBufferM = 300.0
)

// CalculateLocationScore computes the nested location sub-score from the
// competitor and demographic bundles. The boolean is false when either
// bundle is absent; callers then fall back to the legacy location formula.
func CalculateLocationScore(comp *domain.CompetitorReport, demo *domain.DemographicReport) (domain.LocationBreakdown, bool) {
	if comp == nil || demo == nil {
		return domain.LocationBreakdown{}, false
	}

	b := domain.LocationBreakdown{
		Synergy:     synergyScore(comp),
		Demographic: demographicQualityScore(demo),
		Competitor:  competitorPressureScore(comp),
	}
	b.Score = int(math.Round(float64(
		b.Synergy*synergyWeightTenths+
			b.Demographic*demoQualityWeightTenths+
			b.Competitor*competitorWeightTenths) / 10))
	return b, true
}

// synergyScore rewards traffic-locomotive anchors (pharmacy, bakery,
// grocery-class) near the target, plus a bonus for a dense POI cluster.
func synergyScore(comp *domain.CompetitorReport) int {
	score := 50
	switch {
	case comp.HasLocomotiveWithin(locomotiveCloseM):
		score = 90
	case comp.HasLocomotiveWithin(locomotiveNearM):
		score = 70
	}
	if comp.POIWithin(clusterRadiusM) > clusterPOICount {
		score += clusterBonus
	}
	return domain.ClampScore(score)
}

// demographicQualityScore positions the area on the density/income matrix.
// The matrix values come from iterative field tuning.
func demographicQualityScore(demo *domain.DemographicReport) int {
	density := demo.TradeAreaPotential.DensityPerKm2
	income := demo.TradeAreaPotential.MedianIncome

	switch {
	case density < lowDensityPerKm2 && income > premiumIncome:
		return 80 // premium low-density
	case density < lowDensityPerKm2 && income < deadZoneIncome:
		return 20 // dead zone
	case density > highDensityPerKm2 && income > premiumIncome:
		return 85 // premium urban core
	case density > highDensityPerKm2:
		return 65
	default:
		return 55
	}
}

// competitorPressureScore rewards distance from direct competitors. An
// unknown nearest distance with competitors present scores as close
// pressure: the conservative reading.
func competitorPressureScore(comp *domain.CompetitorReport) int {
	if comp.DirectCompetitorCount() == 0 {
		return 100 // local monopoly
	}
	nearest, known := comp.NearestDirectDistance()
	if known && nearest > competitorBufferM {
		return 70
	}
	return 40
}
