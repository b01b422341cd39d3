package geo

import (
	"math"
	"testing"
)

var (
	taipei    = LatLng{Lat: 25.0478, Lng: 121.5319}
	kaohsiung = LatLng{Lat: 22.627, Lng: 120.301}
)

func TestDistanceKm_TaipeiKaohsiung(t *testing.T) {
	d := DistanceKm(taipei, kaohsiung)
	if d < 280 || d > 300 {
		t.Errorf("Taipei-Kaohsiung = %.1f km, want 280-300", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]LatLng{
		{taipei, kaohsiung},
		{{0, 179.9}, {0, -179.9}},
		{{89.9, 0}, {89.9, 180}},
		{{-33.8688, 151.2093}, {51.5074, -0.1278}},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1])
		ba := DistanceKm(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("DistanceKm(%v, %v) = %v, reverse = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestDistanceKm_Zero(t *testing.T) {
	for _, p := range []LatLng{taipei, kaohsiung, {0, 0}, {-90, 0}, {45, 180}} {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("DistanceKm(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceKm_Antimeridian(t *testing.T) {
	// 0.2 degrees of longitude on the equator, across the dateline.
	d := DistanceKm(LatLng{0, 179.9}, LatLng{0, -179.9})
	want := 0.2 * math.Pi / 180 * EarthRadiusKm
	if math.Abs(d-want) > 0.01 {
		t.Errorf("across antimeridian = %.4f km, want %.4f", d, want)
	}
}

func TestDistanceKm_Pole(t *testing.T) {
	// Opposite meridians near the pole are close, not half a world apart.
	d := DistanceKm(LatLng{89.9, 0}, LatLng{89.9, 180})
	want := 0.2 * math.Pi / 180 * EarthRadiusKm
	if math.Abs(d-want) > 0.01 {
		t.Errorf("across pole = %.4f km, want %.4f", d, want)
	}
}
