package engine

import (
	"fmt"

	"dealscope/internal/domain"
)

// Cross-validation thresholds. Calibrated against field data; changing them
// changes recommendations.
const (
	busyZonePopulation  = 3000 // 500 m trade-area population implying foot traffic
	quietZonePopulation = 500
	crowdedPOICount     = 10

	geoMinorDistanceM = 100.0
	geoMajorDistanceM = 200.0

	budgetPriceLevel  = 1 // provider's cheapest band
	premiumPriceLevel = 3

	excellentRating = 4.0
	weakRating      = 3.0
	derelictNote    = 5.0
	pristineNote    = 8.0

	strongDemographicScore = 75
	heavyRenovationBudget  = 50000.0
)

// crossRule inspects a snapshot pair-wise and reports zero or more issues.
// Rules are independent; every applicable rule fires in the same pass.
type crossRule func(domain.Snapshot) []domain.Issue

// crossRules is the closed dispatch table over the six disagreement
// patterns.
var crossRules = []crossRule{
	checkPopulationPOI,
	checkCSPPricing,
	checkRatingPhotos,
	checkGeographic,
	checkScoreBudget,
	checkDataConsistency,
}

// CrossValidate pairwise-inspects the signal bundles and emits an issue for
// every disagreement found. A rule whose inputs are partly absent never
// fires: missing data is insufficient data, not a mismatch.
func CrossValidate(snap domain.Snapshot) []domain.Issue {
	var issues []domain.Issue
	for _, rule := range crossRules {
		issues = append(issues, rule(snap)...)
	}
	return issues
}

// checkPopulationPOI compares the demographic catchment against the mapped
// commercial activity around the target.
func checkPopulationPOI(snap domain.Snapshot) []domain.Issue {
	if snap.Demographic == nil || snap.Competitor == nil {
		return nil
	}

	pop := snap.Demographic.TradeAreaPotential.Population500m
	pois := snap.Competitor.POICount()

	var issues []domain.Issue
	if pop > busyZonePopulation && pois == 0 {
		issues = append(issues, domain.Issue{
			Type:     domain.ConflictPopulationPOI,
			Severity: domain.SeverityHigh,
			Description: fmt.Sprintf(
				"trade-area population %d implies a busy zone but no nearby businesses were found", pop),
			Sources: map[string]any{
				domain.AgentDemographic: pop,
				domain.AgentCompetitor:  pois,
			},
		})
	}
	if pop < quietZonePopulation && pois > crowdedPOICount {
		issues = append(issues, domain.Issue{
			Type:     domain.ConflictPopulationPOI,
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf(
				"trade-area population %d is low but %d businesses are mapped nearby", pop, pois),
			Sources: map[string]any{
				domain.AgentDemographic: pop,
				domain.AgentCompetitor:  pois,
			},
		})
	}
	return issues
}

// checkCSPPricing compares the socio-professional profile against the
// listing's price positioning.
func checkCSPPricing(snap domain.Snapshot) []domain.Issue {
	if snap.Demographic == nil || snap.Places == nil || !snap.Places.Found {
		return nil
	}
	level := snap.Places.PriceLevel
	if level == 0 {
		// Provider did not report a price band.
		return nil
	}

	class := snap.Demographic.CSPProfile.DominantClass
	sources := map[string]any{
		domain.AgentDemographic: class,
		domain.AgentPlaces:      level,
	}

	switch {
	case class == "high" && level == budgetPriceLevel:
		return []domain.Issue{{
			Type:        domain.ConflictCSPPricing,
			Severity:    domain.SeverityMedium,
			Description: "dominant socio-economic class is high but the listing sits in the cheapest price band",
			Sources:     sources,
		}}
	case class == "low" && level >= premiumPriceLevel:
		return []domain.Issue{{
			Type:        domain.ConflictCSPPricing,
			Severity:    domain.SeverityMedium,
			Description: "dominant socio-economic class is low but the listing is priced as premium",
			Sources:     sources,
		}}
	}
	return nil
}

// checkRatingPhotos compares the map rating against the photographed
// condition of the premises.
func checkRatingPhotos(snap domain.Snapshot) []domain.Issue {
	if snap.Places == nil || !snap.Places.Found || snap.Places.Rating == 0 {
		return nil
	}
	if snap.Photo == nil || !snap.Photo.Analyzed {
		return nil
	}

	rating := snap.Places.Rating
	note := snap.Photo.Condition.OverallNote
	sources := map[string]any{
		domain.AgentPlaces: rating,
		domain.AgentPhoto:  note,
		"ratings_total":    snap.Places.UserRatingsTotal,
	}

	switch {
	case rating > excellentRating && note < derelictNote:
		return []domain.Issue{{
			Type:     domain.ConflictRatingPhotos,
			Severity: domain.SeverityHigh,
			Description: fmt.Sprintf(
				"map rating %.1f is excellent but the premises photograph at %.0f/10", rating, note),
			Sources: sources,
		}}
	case rating < weakRating && note > pristineNote:
		return []domain.Issue{{
			Type:     domain.ConflictRatingPhotos,
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf(
				"map rating %.1f is weak but the premises photograph at %.0f/10", rating, note),
			Sources: sources,
		}}
	}
	return nil
}

// checkGeographic measures the distance between the preparation-stage
// coordinates and the map-listing coordinates.
func checkGeographic(snap domain.Snapshot) []domain.Issue {
	if snap.Preparation == nil || snap.Places == nil || !snap.Places.Found {
		return nil
	}
	prep := snap.Preparation.Coordinates
	listing := snap.Places.Location
	if prep.IsZero() || listing.IsZero() {
		return nil
	}

	dist := domain.HaversineMeters(prep, listing)
	if dist <= geoMinorDistanceM {
		return nil
	}

	severity := domain.SeverityMedium
	if dist > geoMajorDistanceM {
		severity = domain.SeverityCritical
	}
	return []domain.Issue{{
		Type:     domain.ConflictGeographic,
		Severity: severity,
		Description: fmt.Sprintf(
			"geocoder and map listing disagree on location by %.0f m", dist),
		Sources: map[string]any{
			domain.AgentPreparation: prep,
			domain.AgentPlaces:      listing,
			"distance_m":            dist,
		},
	}}
}

// checkScoreBudget flags a strong demographic score paired with a heavy
// renovation budget: the premises may not match the zone's promise.
func checkScoreBudget(snap domain.Snapshot) []domain.Issue {
	if snap.Demographic == nil || snap.Photo == nil || !snap.Photo.Analyzed {
		return nil
	}

	score := snap.Demographic.DemographicScore
	budget := snap.Photo.RenovationBudget.High
	if score > strongDemographicScore && budget > heavyRenovationBudget {
		return []domain.Issue{{
			Type:     domain.ConflictScore,
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf(
				"demographic score %d is strong but the renovation estimate reaches %.0f", score, budget),
			Sources: map[string]any{
				domain.AgentDemographic: score,
				domain.AgentPhoto:       budget,
			},
		}}
	}
	return nil
}

// checkDataConsistency flags a map lookup that reports "not found" while the
// preparation stage holds valid coordinates for the same business.
func checkDataConsistency(snap domain.Snapshot) []domain.Issue {
	if snap.Places == nil || snap.Places.Found {
		return nil
	}
	if snap.Preparation == nil || snap.Preparation.Coordinates.IsZero() {
		return nil
	}

	return []domain.Issue{{
		Type:        domain.ConflictDataInconsistency,
		Severity:    domain.SeverityMedium,
		Description: "map lookup reports the business as not found while valid coordinates exist",
		Sources: map[string]any{
			domain.AgentPlaces:      "not_found",
			domain.AgentPreparation: snap.Preparation.Coordinates,
		},
	}}
}
