package geo

import (
	"math"
	"testing"
)

func TestBoxAround(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		radiusKm float64
	}{
		{"HCMC center", 10.7769, 106.7009, 10},
		{"equator", 0, 106.0, 5},
		{"southern hemisphere", -33.86, 151.2, 7.5},
		{"small radius", 10.0, 106.0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := BoxAround(Coordinate{Lat: tt.lat, Lon: tt.lon}, tt.radiusKm)

			if box.MinLat >= tt.lat || box.MaxLat <= tt.lat {
				t.Errorf("latitude %v not strictly inside [%v, %v]", tt.lat, box.MinLat, box.MaxLat)
			}
			if box.MinLon >= tt.lon || box.MaxLon <= tt.lon {
				t.Errorf("longitude %v not strictly inside [%v, %v]", tt.lon, box.MinLon, box.MaxLon)
			}
		})
	}
}

func TestBoxAround_LatitudeDelta(t *testing.T) {
	// 111 km of radius should map to one degree of latitude either way.
	box := BoxAround(Coordinate{Lat: 10, Lon: 106}, 111)

	if got := box.MaxLat - box.MinLat; math.Abs(got-2.0) > 1e-9 {
		t.Errorf("expected 2 degrees of latitude span, got %v", got)
	}
}

func TestHaversineKm_Identity(t *testing.T) {
	p := Coordinate{Lat: 10.762622, Lon: 106.660172}
	if d := HaversineKm(p, p); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := Coordinate{Lat: 10.762622, Lon: 106.660172}
	b := Coordinate{Lat: 21.028511, Lon: 105.854164}

	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Ho Chi Minh City to Hanoi is roughly 1140 km as the crow flies.
	hcmc := Coordinate{Lat: 10.762622, Lon: 106.660172}
	hanoi := Coordinate{Lat: 21.028511, Lon: 105.854164}

	d := HaversineKm(hcmc, hanoi)
	if d < 1100 || d > 1200 {
		t.Errorf("HCMC-Hanoi distance = %v km, want within [1100, 1200]", d)
	}
}

func TestHaversineKm_MonotonicWithSeparation(t *testing.T) {
	origin := Coordinate{Lat: 10, Lon: 106}
	near := Coordinate{Lat: 10.01, Lon: 106}
	far := Coordinate{Lat: 10.5, Lon: 106}

	if HaversineKm(origin, near) >= HaversineKm(origin, far) {
		t.Error("expected greater angular separation to yield greater distance")
	}
}
