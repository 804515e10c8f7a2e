package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// earthRadiusMeters is the mean Earth radius used for haversine distances
const earthRadiusMeters = 6371000.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the haversine formula. Pure arithmetic: symmetric in its two
// points, non-negative, and ~0 for identical points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius reports whether point lies within radiusMeters of center
func WithinRadius(center, point GeoPoint, radiusMeters float64) bool {
	return DistanceMeters(center.Latitude, center.Longitude, point.Latitude, point.Longitude) <= radiusMeters
}

// EncodeLocation converts a coordinate pair to a geohash string
func EncodeLocation(lat, lon float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lon, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// ValidCoordinates reports whether the pair is a plausible WGS84 coordinate
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
