package domain

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	paris := Coordinates{Lat: 48.8566, Lng: 2.3522}

	t.Run("zero distance", func(t *testing.T) {
		if d := HaversineMeters(paris, paris); d != 0 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("symmetry", func(t *testing.T) {
		lyon := Coordinates{Lat: 45.7640, Lng: 4.8357}
		ab := HaversineMeters(paris, lyon)
		ba := HaversineMeters(lyon, paris)
		if math.Abs(ab-ba) > 1e-6 {
			t.Errorf("distance not symmetric: %f vs %f", ab, ba)
		}
		// Paris to Lyon is roughly 392 km as the crow flies.
		if ab < 385000 || ab > 400000 {
			t.Errorf("Paris-Lyon distance out of range: %f", ab)
		}
	})

	t.Run("one arcsecond of latitude", func(t *testing.T) {
		b := Coordinates{Lat: paris.Lat + 1.0/3600, Lng: paris.Lng}
		d := HaversineMeters(paris, b)
		// An arcsecond of latitude is about 30.9 m on this sphere.
		if d < 30 || d > 32 {
			t.Errorf("expected ~31 m, got %f", d)
		}
	})
}

func TestCoordinatesIsZero(t *testing.T) {
	if !(Coordinates{}).IsZero() {
		t.Error("origin should read as unset")
	}
	if (Coordinates{Lat: 48.85, Lng: 2.35}).IsZero() {
		t.Error("a real point should not read as unset")
	}
	if (Coordinates{Lat: 0, Lng: 2.35}).IsZero() {
		t.Error("a point on the equator is still a point")
	}
}
