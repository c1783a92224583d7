package engine

import (
	"fmt"
	"time"

	"dealscope/internal/domain"
)

// thinRatingVolume is the review count below which a map rating is too thin
// to outweigh direct photographic evidence.
const thinRatingVolume = 10

// sourcePriorities fixes, per conflict type, which source outranks which:
// field data and API measurements beat demographic estimation, which beats
// inferred values; direct measurement beats deduction.
var sourcePriorities = map[domain.ConflictType][]string{
	domain.ConflictGeographic:        {domain.AgentPlaces, domain.AgentPreparation},
	domain.ConflictPopulationPOI:     {domain.AgentCompetitor, domain.AgentDemographic},
	domain.ConflictCSPPricing:        {domain.AgentPlaces, domain.AgentDemographic},
	domain.ConflictRatingPhotos:      {domain.AgentPhoto, domain.AgentPlaces},
	domain.ConflictScore:             {domain.AgentPhoto, domain.AgentDemographic},
	domain.ConflictDataInconsistency: {domain.AgentPreparation, domain.AgentPlaces},
}

// Arbitrator resolves conflicts one at a time into terminal resolutions.
// The clock is injectable for deterministic output.
type Arbitrator struct {
	Now func() time.Time
}

// NewArbitrator returns an arbitrator with production defaults.
func NewArbitrator() *Arbitrator {
	return &Arbitrator{Now: time.Now}
}

// Arbitrate applies the per-type priority rules to every unresolved
// conflict and returns one resolution per conflict, the post-arbitration
// conflict set, per-kind counts, and the advisory go/no-go impact.
// Independent conflicts carry no ordering guarantee; only the aggregate is
// computed after all resolutions.
func (a *Arbitrator) Arbitrate(conflicts []domain.Conflict) domain.ArbitrationOutcome {
	now := a.Now().UTC()

	outcome := domain.ArbitrationOutcome{
		Conflicts: make([]domain.Conflict, len(conflicts)),
		Counts:    make(map[domain.ResolutionKind]int),
	}
	copy(outcome.Conflicts, conflicts)

	totalConfidence := 0.0
	for i := range outcome.Conflicts {
		c := &outcome.Conflicts[i]
		if c.Resolved {
			continue
		}

		res := a.resolve(*c)
		res.ResolvedAt = now
		res.SourcePriority = sourcePriorities[c.Type]

		c.Resolved = res.Resolution.Settles()

		outcome.Resolutions = append(outcome.Resolutions, res)
		outcome.Counts[res.Resolution]++
		totalConfidence += res.Confidence
	}

	if n := len(outcome.Resolutions); n > 0 {
		outcome.AverageConfidence = totalConfidence / float64(n)
	} else {
		// Nothing was contested.
		outcome.AverageConfidence = 1.0
	}

	outcome.Impact = assessImpact(outcome)
	return outcome
}

// resolve picks the terminal state for one conflict. Confidence stays
// consistent with the kind: a revalidation verdict never claims more than
// 0.69.
func (a *Arbitrator) resolve(c domain.Conflict) domain.Resolution {
	res := domain.Resolution{ConflictID: c.ID}

	switch c.Type {
	case domain.ConflictGeographic:
		dist, ok := floatSource(c.Sources, "distance_m")
		if !ok {
			// Distance missing from the record; fall back on severity.
			if c.Severity == domain.SeverityCritical {
				dist = geoMajorDistanceM + 1
			} else {
				dist = geoMinorDistanceM + 1
			}
		}
		if dist > geoMajorDistanceM {
			res.Resolution = domain.ResolutionRejected
			res.Confidence = 0.85
			res.Explanation = fmt.Sprintf(
				"providers disagree by %.0f m; the map listing is an API measurement and outranks the geocoder inference", dist)
			res.Action = "discard_geocoder_coordinates"
			if listing, ok := c.Sources[domain.AgentPlaces]; ok {
				res.UpdatedData = map[string]any{"coordinates": listing}
			}
		} else {
			res.Resolution = domain.ResolutionNeedsRevalidation
			res.Confidence = 0.55
			res.Explanation = fmt.Sprintf(
				"providers disagree by %.0f m, inside the ambiguity band; neither source is authoritative", dist)
			res.Action = "revalidate_coordinates"
		}

	case domain.ConflictPopulationPOI:
		if c.Severity == domain.SeverityHigh {
			// Dense population, zero POIs: the competitor scan likely ran on
			// bad coordinates.
			res.Resolution = domain.ResolutionNeedsRevalidation
			res.Confidence = 0.60
			res.Explanation = "a populated zone with zero mapped businesses suggests the competitor scan used bad coordinates"
			res.Action = "rerun_competitor_scan"
		} else {
			// Sparse population, many POIs: a legitimate commercial enclave
			// (industrial zone, transit hub); both signals stand.
			res.Resolution = domain.ResolutionHybrid
			res.Confidence = 0.78
			res.Explanation = "low residential population with many businesses indicates a commercial enclave; both signals are kept"
			res.Action = "keep_both_signals"
		}

	case domain.ConflictRatingPhotos:
		volume, _ := intSource(c.Sources, "ratings_total")
		if volume > 0 && volume < thinRatingVolume {
			// Direct photographic measurement outranks a thin rating sample.
			res.Resolution = domain.ResolutionConfirmed
			res.Confidence = 0.80
			res.Explanation = fmt.Sprintf(
				"only %d reviews back the map rating; the photo assessment is direct measurement and is confirmed", volume)
			res.Action = "prefer_photo_assessment"
		} else {
			res.Resolution = domain.ResolutionHybrid
			res.Confidence = 0.70
			res.Explanation = "a well-reviewed listing and a contrary photo assessment are both partially valid; condition may have changed since the reviews"
			res.Action = "keep_both_signals"
		}

	case domain.ConflictCSPPricing, domain.ConflictScore:
		res.Resolution = domain.ResolutionHybrid
		res.Confidence = 0.72
		res.Explanation = "both signals are partially valid; neither side is clearly authoritative"
		res.Action = "keep_both_signals"

	case domain.ConflictDataInconsistency:
		res.Resolution = domain.ResolutionNeedsRevalidation
		res.Confidence = 0.60
		res.Explanation = "the map lookup contradicts itself; the listing query must be re-run"
		res.Action = "rerun_places_lookup"

	default:
		res.Resolution = domain.ResolutionNeedsRevalidation
		res.Confidence = 0.50
		res.Explanation = "unknown conflict type; manual review required"
		res.Action = "manual_review"
	}

	return res
}

// assessImpact derives the advisory go/no-go object. A CRITICAL conflict
// only counts as cleared when arbitration landed on CONFIRMED or HYBRID.
func assessImpact(outcome domain.ArbitrationOutcome) domain.GoNoGoImpact {
	cleared := map[string]bool{}
	for _, res := range outcome.Resolutions {
		if res.Resolution == domain.ResolutionConfirmed || res.Resolution == domain.ResolutionHybrid {
			cleared[res.ConflictID] = true
		}
	}

	remainingCritical := 0
	for _, c := range outcome.Conflicts {
		if c.Severity == domain.SeverityCritical && !cleared[c.ID] {
			remainingCritical++
		}
	}

	impact := domain.GoNoGoImpact{
		BlockingIssuesResolved:  remainingCritical == 0,
		RemainingCriticalIssues: remainingCritical,
	}

	switch {
	case remainingCritical > 0:
		impact.Recommendation = domain.RecommendationNoGo
	case outcome.Counts[domain.ResolutionNeedsRevalidation] > 0:
		impact.Recommendation = domain.RecommendationGoWithReserves
	default:
		impact.Recommendation = domain.RecommendationGo
	}
	return impact
}

// floatSource reads a numeric value from a sources map, tolerating the
// int/float64 ambiguity of JSON round-trips.
func floatSource(sources map[string]any, key string) (float64, bool) {
	switch v := sources[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// intSource reads an integer value from a sources map.
func intSource(sources map[string]any, key string) (int, bool) {
	f, ok := floatSource(sources, key)
	return int(f), ok
}
