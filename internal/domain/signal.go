package domain

import "strings"

// Agent names identify the five upstream collectors. They key the
// completeness map consumed by the coherence scorer and the sources maps
// attached to conflicts.
const (
	AgentDemographic = "demographic"
	AgentPlaces      = "places"
	AgentPhoto       = "photo"
	AgentCompetitor  = "competitor"
	AgentPreparation = "preparation"
)

// AgentNames lists all five collectors in canonical order.
var AgentNames = []string{
	AgentDemographic,
	AgentPlaces,
	AgentPhoto,
	AgentCompetitor,
	AgentPreparation,
}

// TradeAreaPotential estimates the catchment population around the target.
type TradeAreaPotential struct {
	// Population500m is the estimated population within a 500 m radius.
	Population500m int `json:"population_500m"`
	// DensityPerKm2 is inhabitants per square kilometer in the trade area.
	DensityPerKm2 float64 `json:"density_per_km2"`
	// MedianIncome is the median household income, in currency units.
	MedianIncome float64 `json:"median_income"`
}

// CSPProfile summarizes the socio-professional category mix of the area.
type CSPProfile struct {
	// DominantClass is "high", "medium" or "low".
	DominantClass string `json:"dominant_class"`
}

// DemographicReport is the neighborhood demographics bundle.
type DemographicReport struct {
	TradeAreaPotential TradeAreaPotential `json:"trade_area_potential"`
	CSPProfile         CSPProfile         `json:"csp_profile"`
	// DemographicScore is the collector's own 0-100 assessment of the area.
	DemographicScore int `json:"demographic_score"`
}

// PlacesReport is the map-listing bundle for the target business.
// Field names follow the upstream places provider payload.
type PlacesReport struct {
	Found            bool    `json:"found"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"userRatingsTotal"`
	// PriceLevel is the provider's 1-4 price band; 0 means not reported.
	PriceLevel int         `json:"priceLevel"`
	Location   Coordinates `json:"location"`
}

// ConditionReport is the overall physical condition extracted from photos.
// The photo collector reports in French; JSON tags preserve its wire format.
type ConditionReport struct {
	// OverallNote grades the premises 0-10.
	OverallNote float64 `json:"note_globale"`
}

// BudgetEstimate is a renovation budget range in currency units.
type BudgetEstimate struct {
	Low  float64 `json:"fourchette_basse"`
	High float64 `json:"fourchette_haute"`
}

// PhotoAssessment is the physical-condition bundle from the vision pipeline.
type PhotoAssessment struct {
	Analyzed         bool            `json:"analyzed"`
	Condition        ConditionReport `json:"etat_general"`
	RenovationBudget BudgetEstimate  `json:"budget_travaux"`
}

// DensityLevel buckets competitor density around the target.
type DensityLevel string

const (
	DensityVeryLow  DensityLevel = "very_low"
	DensityLow      DensityLevel = "low"
	DensityMedium   DensityLevel = "medium"
	DensityHigh     DensityLevel = "high"
	DensityVeryHigh DensityLevel = "very_high"
)

// POI is a mapped business or amenity near the target.
type POI struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	DistanceM float64 `json:"distance_m"`
	// Direct marks a same-trade competitor rather than a neighboring amenity.
	Direct bool `json:"direct"`
}

// locomotiveCategories are anchor trades that pull recurring foot traffic.
// Collectors report categories in English or French depending on provider.
var locomotiveCategories = map[string]bool{
	"pharmacy":    true,
	"pharmacie":   true,
	"bakery":      true,
	"boulangerie": true,
	"grocery":     true,
	"epicerie":    true,
	"supermarket": true,
	"supermarche": true,
}

// IsLocomotive reports whether the POI is a traffic-locomotive anchor.
func (p POI) IsLocomotive() bool {
	return locomotiveCategories[strings.ToLower(p.Category)]
}

// CompetitorReport is the competitive-landscape bundle.
type CompetitorReport struct {
	NearbyPOI        []POI        `json:"nearby_poi"`
	TotalCompetitors int          `json:"total_competitors"`
	DensityLevel     DensityLevel `json:"density_level"`
}

// POICount returns the total number of mapped POIs near the target.
func (c *CompetitorReport) POICount() int {
	if c == nil {
		return 0
	}
	return len(c.NearbyPOI)
}

// POIWithin counts POIs within the given radius in meters.
func (c *CompetitorReport) POIWithin(radiusM float64) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, p := range c.NearbyPOI {
		if p.DistanceM <= radiusM {
			n++
		}
	}
	return n
}

// HasLocomotiveWithin reports whether any traffic-locomotive POI sits within
// the given radius in meters.
func (c *CompetitorReport) HasLocomotiveWithin(radiusM float64) bool {
	if c == nil {
		return false
	}
	for _, p := range c.NearbyPOI {
		if p.IsLocomotive() && p.DistanceM <= radiusM {
			return true
		}
	}
	return false
}

// NearestDirectDistance returns the distance to the closest direct
// competitor, and whether any direct competitor with a known distance exists.
func (c *CompetitorReport) NearestDirectDistance() (float64, bool) {
	if c == nil {
		return 0, false
	}
	nearest := 0.0
	found := false
	for _, p := range c.NearbyPOI {
		if !p.Direct {
			continue
		}
		if !found || p.DistanceM < nearest {
			nearest = p.DistanceM
			found = true
		}
	}
	return nearest, found
}

// DirectCompetitorCount returns the number of direct competitors, preferring
// the collector's explicit total over the POI list when both are present.
func (c *CompetitorReport) DirectCompetitorCount() int {
	if c == nil {
		return 0
	}
	if c.TotalCompetitors > 0 {
		return c.TotalCompetitors
	}
	n := 0
	for _, p := range c.NearbyPOI {
		if p.Direct {
			n++
		}
	}
	return n
}

// PreparationReport is the geolocation-preparation bundle: the geocoded
// identity of the target established before the other collectors run.
type PreparationReport struct {
	BusinessName string      `json:"business_name,omitempty"`
	Address      string      `json:"address,omitempty"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Snapshot is the immutable five-bundle input to one evaluation run. Bundles
// are produced once by external collectors; any may be nil. Components read
// the snapshot by value and never mutate it.
type Snapshot struct {
	Demographic *DemographicReport `json:"demographic,omitempty"`
	Places      *PlacesReport      `json:"places,omitempty"`
	Photo       *PhotoAssessment   `json:"photo,omitempty"`
	Competitor  *CompetitorReport  `json:"competitor,omitempty"`
	Preparation *PreparationReport `json:"preparation,omitempty"`

	// DecodeFailures records bundles that arrived undecodable and were
	// dropped at the boundary. The evaluation proceeds on the surviving
	// bundles and surfaces these notes in Report.Errors.
	DecodeFailures []string `json:"-"`
}

// Completeness reports, per collector, whether its bundle is present.
func (s Snapshot) Completeness() map[string]bool {
	return map[string]bool{
		AgentDemographic: s.Demographic != nil,
		AgentPlaces:      s.Places != nil,
		AgentPhoto:       s.Photo != nil,
		AgentCompetitor:  s.Competitor != nil,
		AgentPreparation: s.Preparation != nil,
	}
}
