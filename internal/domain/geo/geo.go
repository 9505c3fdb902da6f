// Package geo holds the great-circle math used for safe zone matching and
// nearby lookups.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used by every distance here.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the Haversine distance between two lat/lon points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// Rounding can push a marginally above 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Distance is DistanceMeters over orb points (X = longitude, Y = latitude).
func Distance(a, b orb.Point) float64 {
	return DistanceMeters(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// ContainsPoint reports whether p lies within radiusMeters of center.
// A point exactly on the boundary is inside.
func ContainsPoint(center orb.Point, radiusMeters float64, p orb.Point) bool {
	return Distance(center, p) <= radiusMeters
}

// IsValidCoordinate rejects non-finite and out-of-range coordinates.
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// NewPoint builds an orb point from latitude and longitude.
func NewPoint(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// BoundAround returns a lat/lon box enclosing the circle around center.
// It is only a prefilter; callers confirm with Distance.
func BoundAround(center orb.Point, radiusMeters float64) orb.Bound {
	// orb works on the equatorial radius, scale so the box covers our sphere.
	return orbgeo.NewBoundAroundPoint(center, radiusMeters*orb.EarthRadius/EarthRadiusMeters)
}
