package domain

import "testing"

func TestPOIIsLocomotive(t *testing.T) {
	cases := []struct {
		category string
		want     bool
	}{
		{"pharmacy", true},
		{"Pharmacie", true},
		{"boulangerie", true},
		{"SUPERMARKET", true},
		{"epicerie", true},
		{"florist", false},
		{"", false},
	}
	for _, tc := range cases {
		p := POI{Category: tc.category}
		if got := p.IsLocomotive(); got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.category, tc.want, got)
		}
	}
}

func TestCompetitorReportHelpers(t *testing.T) {
	report := &CompetitorReport{
		NearbyPOI: []POI{
			{Name: "Pharmacie", Category: "pharmacy", DistanceM: 80},
			{Name: "Epicerie Bio", Category: "grocery", DistanceM: 420, Direct: true},
			{Name: "Superette", Category: "supermarket", DistanceM: 150, Direct: true},
		},
	}

	if got := report.POICount(); got != 3 {
		t.Errorf("POICount: expected 3, got %d", got)
	}
	if got := report.POIWithin(200); got != 2 {
		t.Errorf("POIWithin(200): expected 2, got %d", got)
	}
	if !report.HasLocomotiveWithin(100) {
		t.Error("expected a locomotive within 100 m")
	}
	if report.HasLocomotiveWithin(50) {
		t.Error("expected no locomotive within 50 m")
	}

	nearest, ok := report.NearestDirectDistance()
	if !ok || nearest != 150 {
		t.Errorf("NearestDirectDistance: expected 150,true, got %f,%v", nearest, ok)
	}

	t.Run("explicit total wins over the POI list", func(t *testing.T) {
		if got := report.DirectCompetitorCount(); got != 2 {
			t.Errorf("expected 2 from the POI list, got %d", got)
		}
		report.TotalCompetitors = 5
		if got := report.DirectCompetitorCount(); got != 5 {
			t.Errorf("expected the explicit total 5, got %d", got)
		}
	})

	t.Run("nil receiver degrades to empty", func(t *testing.T) {
		var none *CompetitorReport
		if none.POICount() != 0 || none.POIWithin(100) != 0 || none.DirectCompetitorCount() != 0 {
			t.Error("nil report should count nothing")
		}
		if none.HasLocomotiveWithin(100) {
			t.Error("nil report has no locomotives")
		}
		if _, ok := none.NearestDirectDistance(); ok {
			t.Error("nil report has no competitors")
		}
	})
}

func TestSnapshotCompleteness(t *testing.T) {
	snap := Snapshot{
		Demographic: &DemographicReport{},
		Places:      &PlacesReport{},
	}
	got := snap.Completeness()

	if len(got) != len(AgentNames) {
		t.Fatalf("expected an entry per collector, got %d", len(got))
	}
	for _, name := range AgentNames {
		if _, ok := got[name]; !ok {
			t.Errorf("missing entry for %s", name)
		}
	}
	if !got[AgentDemographic] || !got[AgentPlaces] {
		t.Error("present bundles should read true")
	}
	if got[AgentPhoto] || got[AgentCompetitor] || got[AgentPreparation] {
		t.Error("absent bundles should read false")
	}
}

func TestReportSummarize(t *testing.T) {
	r := Report{
		ID:             "run-1",
		CoherenceScore: 88,
		RiskScore:      72,
		Conflicts:      []Conflict{{ID: "c-1"}, {ID: "c-2"}},
		Decision:       Decision{Recommendation: RecommendationGoWithReserves, Score: 68},
	}
	s := r.Summarize()
	if s.ID != "run-1" || s.Score != 68 || s.ConflictCount != 2 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.Recommendation != RecommendationGoWithReserves {
		t.Errorf("expected GO_WITH_RESERVES, got %s", s.Recommendation)
	}
}
