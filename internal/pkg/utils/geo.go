package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometers. The same formula (Earth radius 6371 km) is evaluated by the
// SQL radius filter; the two must stay in sync or paginated ordering will
// disagree with the distance shown to the caller.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceMeters returns the haversine distance in meters rounded to four
// decimal places.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	m := HaversineKm(lat1, lon1, lat2, lon2) * 1000
	return math.Round(m*10000) / 10000
}

// ValidCoordinates reports whether a lat/lon pair is in range.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
