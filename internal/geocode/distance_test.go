package geocode

import (
	"math"
	"testing"
)

var (
	moscow = Point{Lon: 37.6173, Lat: 55.7558}
	spb    = Point{Lon: 30.3141, Lat: 59.9386}
)

func TestDistanceKm_KnownPair(t *testing.T) {
	got := DistanceKm(moscow, spb)

	// Great-circle distance Moscow - Saint Petersburg is about 634 km.
	if math.Abs(got-634) > 5 {
		t.Fatalf("expected ~634 km, got %f", got)
	}
}

func TestDistanceKm_SamePoint(t *testing.T) {
	if got := DistanceKm(moscow, moscow); got != 0 {
		t.Fatalf("expected 0 for identical points, got %f", got)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := DistanceKm(moscow, spb)
	ba := DistanceKm(spb, moscow)

	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", ab, ba)
	}
}

func TestDistanceKm_Monotonic(t *testing.T) {
	near := Point{Lon: 37.7, Lat: 55.8}

	if DistanceKm(moscow, near) >= DistanceKm(moscow, spb) {
		t.Fatal("nearer point must have smaller distance")
	}
}
