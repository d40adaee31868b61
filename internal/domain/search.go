package domain

// ServiceSearchFilter is the repository-level candidate filter. The
// repository always restricts to active services; every other condition is
// optional and they compose with AND.
type ServiceSearchFilter struct {
	// Origin plus RadiusKm enable the distance filter and nearest-first
	// ordering. RadiusKm is ignored when Origin is nil.
	Origin   *GeoPoint
	RadiusKm float64

	ServiceTypeID *int64
	// Name is a case-insensitive substring match on the service name.
	Name string

	Limit  int
	Offset int
}
