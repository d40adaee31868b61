package domain

// GeoPoint is an immutable latitude/longitude pair. Validation happens at
// the boundary; code past the DTO layer may assume the ranges hold.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}
