package codec

import (
	"io"

	"dealscope/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML snapshot fixtures: hand-written dossiers used by
// the CLI and by intake directories.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlSnapshot mirrors the snapshot structure with explicit YAML keys.
type yamlSnapshot struct {
	Demographic *yamlDemographic `yaml:"demographic,omitempty"`
	Places      *yamlPlaces      `yaml:"places,omitempty"`
	Photo       *yamlPhoto       `yaml:"photo,omitempty"`
	Competitor  *yamlCompetitor  `yaml:"competitor,omitempty"`
	Preparation *yamlPreparation `yaml:"preparation,omitempty"`
}

type yamlDemographic struct {
	Population500m   int     `yaml:"population_500m"`
	DensityPerKm2    float64 `yaml:"density_per_km2"`
	MedianIncome     float64 `yaml:"median_income"`
	DominantClass    string  `yaml:"dominant_class"`
	DemographicScore int     `yaml:"demographic_score"`
}

type yamlPlaces struct {
	Found            bool      `yaml:"found"`
	Rating           float64   `yaml:"rating"`
	UserRatingsTotal int       `yaml:"user_ratings_total"`
	PriceLevel       int       `yaml:"price_level"`
	Location         yamlPoint `yaml:"location,omitempty"`
}

type yamlPhoto struct {
	Analyzed    bool    `yaml:"analyzed"`
	OverallNote float64 `yaml:"overall_note"`
	BudgetLow   float64 `yaml:"budget_low"`
	BudgetHigh  float64 `yaml:"budget_high"`
}

type yamlCompetitor struct {
	NearbyPOI        []yamlPOI `yaml:"nearby_poi,omitempty"`
	TotalCompetitors int       `yaml:"total_competitors"`
	DensityLevel     string    `yaml:"density_level,omitempty"`
}

type yamlPOI struct {
	Name      string  `yaml:"name,omitempty"`
	Category  string  `yaml:"category"`
	DistanceM float64 `yaml:"distance_m"`
	Direct    bool    `yaml:"direct,omitempty"`
}

type yamlPreparation struct {
	BusinessName string    `yaml:"business_name,omitempty"`
	Address      string    `yaml:"address,omitempty"`
	Coordinates  yamlPoint `yaml:"coordinates"`
}

type yamlPoint struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Parse imports a snapshot fixture from YAML
func (c *YAMLCodec) Parse(r io.Reader) (domain.Snapshot, error) {
	var ys yamlSnapshot
	if err := yaml.NewDecoder(r).Decode(&ys); err != nil {
		return domain.Snapshot{}, &DecodeError{Section: "snapshot", Reason: err.Error()}
	}

	var snap domain.Snapshot
	if ys.Demographic != nil {
		snap.Demographic = &domain.DemographicReport{
			TradeAreaPotential: domain.TradeAreaPotential{
				Population500m: ys.Demographic.Population500m,
				DensityPerKm2:  ys.Demographic.DensityPerKm2,
				MedianIncome:   ys.Demographic.MedianIncome,
			},
			CSPProfile:       domain.CSPProfile{DominantClass: ys.Demographic.DominantClass},
			DemographicScore: ys.Demographic.DemographicScore,
		}
	}
	if ys.Places != nil {
		snap.Places = &domain.PlacesReport{
			Found:            ys.Places.Found,
			Rating:           ys.Places.Rating,
			UserRatingsTotal: ys.Places.UserRatingsTotal,
			PriceLevel:       ys.Places.PriceLevel,
			Location:         domain.Coordinates{Lat: ys.Places.Location.Lat, Lng: ys.Places.Location.Lng},
		}
	}
	if ys.Photo != nil {
		snap.Photo = &domain.PhotoAssessment{
			Analyzed:  ys.Photo.Analyzed,
			Condition: domain.ConditionReport{OverallNote: ys.Photo.OverallNote},
			RenovationBudget: domain.BudgetEstimate{
				Low:  ys.Photo.BudgetLow,
				High: ys.Photo.BudgetHigh,
			},
		}
	}
	if ys.Competitor != nil {
		comp := &domain.CompetitorReport{
			TotalCompetitors: ys.Competitor.TotalCompetitors,
			DensityLevel:     domain.DensityLevel(ys.Competitor.DensityLevel),
		}
		for _, p := range ys.Competitor.NearbyPOI {
			comp.NearbyPOI = append(comp.NearbyPOI, domain.POI{
				Name:      p.Name,
				Category:  p.Category,
				DistanceM: p.DistanceM,
				Direct:    p.Direct,
			})
		}
		snap.Competitor = comp
	}
	if ys.Preparation != nil {
		snap.Preparation = &domain.PreparationReport{
			BusinessName: ys.Preparation.BusinessName,
			Address:      ys.Preparation.Address,
			Coordinates: domain.Coordinates{
				Lat: ys.Preparation.Coordinates.Lat,
				Lng: ys.Preparation.Coordinates.Lng,
			},
		}
	}
	return snap, nil
}

// ExportSnapshot writes a snapshot back out as a YAML fixture.
func (c *YAMLCodec) ExportSnapshot(snap domain.Snapshot, w io.Writer) error {
	var ys yamlSnapshot
	if snap.Demographic != nil {
		ys.Demographic = &yamlDemographic{
			Population500m:   snap.Demographic.TradeAreaPotential.Population500m,
			DensityPerKm2:    snap.Demographic.TradeAreaPotential.DensityPerKm2,
			MedianIncome:     snap.Demographic.TradeAreaPotential.MedianIncome,
			DominantClass:    snap.Demographic.CSPProfile.DominantClass,
			DemographicScore: snap.Demographic.DemographicScore,
		}
	}
	if snap.Places != nil {
		ys.Places = &yamlPlaces{
			Found:            snap.Places.Found,
			Rating:           snap.Places.Rating,
			UserRatingsTotal: snap.Places.UserRatingsTotal,
			PriceLevel:       snap.Places.PriceLevel,
			Location:         yamlPoint{Lat: snap.Places.Location.Lat, Lng: snap.Places.Location.Lng},
		}
	}
	if snap.Photo != nil {
		ys.Photo = &yamlPhoto{
			Analyzed:    snap.Photo.Analyzed,
			OverallNote: snap.Photo.Condition.OverallNote,
			BudgetLow:   snap.Photo.RenovationBudget.Low,
			BudgetHigh:  snap.Photo.RenovationBudget.High,
		}
	}
	if snap.Competitor != nil {
		yc := &yamlCompetitor{
			TotalCompetitors: snap.Competitor.TotalCompetitors,
			DensityLevel:     string(snap.Competitor.DensityLevel),
		}
		for _, p := range snap.Competitor.NearbyPOI {
			yc.NearbyPOI = append(yc.NearbyPOI, yamlPOI{
				Name:      p.Name,
				Category:  p.Category,
				DistanceM: p.DistanceM,
				Direct:    p.Direct,
			})
		}
		ys.Competitor = yc
	}
	if snap.Preparation != nil {
		ys.Preparation = &yamlPreparation{
			BusinessName: snap.Preparation.BusinessName,
			Address:      snap.Preparation.Address,
			Coordinates: yamlPoint{
				Lat: snap.Preparation.Coordinates.Lat,
				Lng: snap.Preparation.Coordinates.Lng,
			},
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(&ys)
}
