package engine

import (
	"math"
	"time"

	"dealscope/internal/domain"
)

// parisBase anchors test coordinates somewhere realistic.
var parisBase = domain.Coordinates{Lat: 48.8566, Lng: 2.3522}

// coordsAtDistance returns a point due north of base at the given
// great-circle distance. Pure latitude offsets make the haversine distance
// exact, so threshold tests are not fuzzy.
func coordsAtDistance(base domain.Coordinates, meters float64) domain.Coordinates {
	return domain.Coordinates{
		Lat: base.Lat + meters*180/(math.Pi*6371000),
		Lng: base.Lng,
	}
}

// fixedClock returns a deterministic clock for builders and arbitrators.
func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

// sequentialIDs returns a deterministic id generator.
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + string(rune('0'+n))
	}
}

// healthySnapshot is a five-bundle snapshot that trips no cross-validation
// rule and scores well on every axis.
func healthySnapshot() domain.Snapshot {
	return domain.Snapshot{
		Demographic: &domain.DemographicReport{
			TradeAreaPotential: domain.TradeAreaPotential{
				Population500m: 2500,
				DensityPerKm2:  2500,
				MedianIncome:   40000,
			},
			CSPProfile:       domain.CSPProfile{DominantClass: "high"},
			DemographicScore: 80,
		},
		Places: &domain.PlacesReport{
			Found:            true,
			Rating:           4.8,
			UserRatingsTotal: 120,
			PriceLevel:       3,
			Location:         parisBase,
		},
		Photo: &domain.PhotoAssessment{
			Analyzed:         true,
			Condition:        domain.ConditionReport{OverallNote: 9},
			RenovationBudget: domain.BudgetEstimate{Low: 4000, High: 9000},
		},
		Competitor: &domain.CompetitorReport{
			NearbyPOI: []domain.POI{
				{Name: "Pharmacie du Centre", Category: "pharmacy", DistanceM: 50},
				{Name: "Boulangerie Martin", Category: "bakery", DistanceM: 120},
				{Name: "Presse Tabac", Category: "newsagent", DistanceM: 80},
			},
			TotalCompetitors: 0,
			DensityLevel:     domain.DensityVeryLow,
		},
		Preparation: &domain.PreparationReport{
			BusinessName: "Aux Bons Produits",
			Address:      "12 rue des Halles, Paris",
			Coordinates:  parisBase,
		},
	}
}

// conflictOf builds a minimal conflict for arbitration tests.
func conflictOf(id string, t domain.ConflictType, sev domain.Severity, sources map[string]any) domain.Conflict {
	return domain.Conflict{
		ID:         id,
		Type:       t,
		Severity:   sev,
		Sources:    sources,
		DetectedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}
