package geo

import "github.com/golang/geo/s2"

// EarthRadiusKm is the mean Earth radius used for all distances.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b in kilometers.
//
// s2.LatLng.Distance evaluates the haversine central angle, so the result is
// the standard spherical distance, symmetric and exactly zero for identical
// points.
func DistanceKm(a, b LatLng) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lng).Distance(s2.LatLngFromDegrees(b.Lat, b.Lng))
	return angle.Radians() * EarthRadiusKm
}
