package engine

import (
	"testing"

	"dealscope/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLocationScoreMonopolyWithAnchor(t *testing.T) {
	comp := &domain.CompetitorReport{
		NearbyPOI: []domain.POI{
			{Name: "Pharmacie Centrale", Category: "pharmacy", DistanceM: 40},
		},
	}
	demo := &domain.DemographicReport{
		TradeAreaPotential: domain.TradeAreaPotential{
			Population500m: 1200,
			DensityPerKm2:  300,
			MedianIncome:   35000,
		},
	}

	got, ok := CalculateLocationScore(comp, demo)
	require.True(t, ok)

	assert.Equal(t, 90, got.Synergy, "a locomotive within 100 m")
	assert.Equal(t, 80, got.Demographic, "premium low-density")
	assert.Equal(t, 100, got.Competitor, "local monopoly")
	assert.Equal(t, 89, got.Score, "round(90*0.5 + 80*0.3 + 100*0.2)")
}

func TestCalculateLocationScoreMissingBundle(t *testing.T) {
	demo := &domain.DemographicReport{}

	_, ok := CalculateLocationScore(nil, demo)
	assert.False(t, ok, "an absent competitor bundle disables the nested score")

	_, ok = CalculateLocationScore(&domain.CompetitorReport{}, nil)
	assert.False(t, ok, "an absent demographic bundle disables the nested score")
}

func TestSynergyScore(t *testing.T) {
	t.Run("no anchors keeps the base", func(t *testing.T) {
		comp := &domain.CompetitorReport{
			NearbyPOI: []domain.POI{{Category: "florist", DistanceM: 60}},
		}
		assert.Equal(t, 50, synergyScore(comp))
	})

	t.Run("distant anchor", func(t *testing.T) {
		comp := &domain.CompetitorReport{
			NearbyPOI: []domain.POI{{Category: "boulangerie", DistanceM: 320}},
		}
		assert.Equal(t, 70, synergyScore(comp))
	})

	t.Run("cluster bonus caps at 100", func(t *testing.T) {
		pois := []domain.POI{{Category: "supermarket", DistanceM: 80}}
		for i := 0; i < 6; i++ {
			pois = append(pois, domain.POI{Category: "florist", DistanceM: 150})
		}
		comp := &domain.CompetitorReport{NearbyPOI: pois}
		assert.Equal(t, 100, synergyScore(comp), "90 + 10 bonus clamps at 100")
	})

	t.Run("cluster bonus on a plain street", func(t *testing.T) {
		var pois []domain.POI
		for i := 0; i < 6; i++ {
			pois = append(pois, domain.POI{Category: "office", DistanceM: 100})
		}
		comp := &domain.CompetitorReport{NearbyPOI: pois}
		assert.Equal(t, 60, synergyScore(comp))
	})
}

func TestDemographicQualityScore(t *testing.T) {
	cases := []struct {
		name    string
		density float64
		income  float64
		want    int
	}{
		{"premium low-density", 300, 35000, 80},
		{"dead zone", 300, 20000, 20},
		{"premium urban core", 2500, 40000, 85},
		{"dense modest core", 2500, 28000, 65},
		{"mid-density default", 1000, 28000, 55},
		{"low density mid income", 300, 28000, 55},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			demo := &domain.DemographicReport{
				TradeAreaPotential: domain.TradeAreaPotential{
					DensityPerKm2: tc.density,
					MedianIncome:  tc.income,
				},
			}
			assert.Equal(t, tc.want, demographicQualityScore(demo))
		})
	}
}

func TestCompetitorPressureScore(t *testing.T) {
	t.Run("local monopoly", func(t *testing.T) {
		assert.Equal(t, 100, competitorPressureScore(&domain.CompetitorReport{}))
	})

	t.Run("buffered competitor", func(t *testing.T) {
		comp := &domain.CompetitorReport{
			NearbyPOI:        []domain.POI{{Category: "grocery", DistanceM: 450, Direct: true}},
			TotalCompetitors: 1,
		}
		assert.Equal(t, 70, competitorPressureScore(comp))
	})

	t.Run("close competitor", func(t *testing.T) {
		comp := &domain.CompetitorReport{
			NearbyPOI:        []domain.POI{{Category: "grocery", DistanceM: 120, Direct: true}},
			TotalCompetitors: 1,
		}
		assert.Equal(t, 40, competitorPressureScore(comp))
	})

	t.Run("competitors with unknown distance read as close", func(t *testing.T) {
		comp := &domain.CompetitorReport{TotalCompetitors: 2}
		assert.Equal(t, 40, competitorPressureScore(comp))
	})
}
