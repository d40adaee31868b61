package domain

import "time"

// ServiceType is reference data (hospital, restaurant, ...), rarely
// mutated after seeding.
type ServiceType struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Icon        *string   `json:"icon,omitempty" db:"icon"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Service is a directory entry. Records are soft-deactivated via is_active,
// never hard-deleted.
type Service struct {
	ID                int64             `json:"id" db:"id"`
	Name              string            `json:"name" db:"name"`
	ServiceTypeID     int64             `json:"service_type_id" db:"service_type_id"`
	StreetAddress     string            `json:"street_address" db:"street_address"`
	AddressComponents AddressComponents `json:"address_components" db:"address_components"`
	CountryCode       string            `json:"country_code" db:"country_code"`
	Latitude          float64           `json:"latitude" db:"latitude"`
	Longitude         float64           `json:"longitude" db:"longitude"`
	Phone             *string           `json:"phone,omitempty" db:"phone"`
	Website           *string           `json:"website,omitempty" db:"website"`
	Rating            float64           `json:"rating" db:"rating"`
	IsActive          bool              `json:"is_active" db:"is_active"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// Location returns the service coordinates as a GeoPoint.
func (s *Service) Location() GeoPoint {
	return GeoPoint{Latitude: s.Latitude, Longitude: s.Longitude}
}

// ServiceWithType is a service joined with its type row. The repository
// performs the join explicitly; there is no lazy relation traversal.
type ServiceWithType struct {
	Service
	ServiceTypeName string  `json:"service_type_name" db:"service_type_name"`
	ServiceTypeIcon *string `json:"service_type_icon,omitempty" db:"service_type_icon"`
}

// EnrichedService is the presentation shape: type, country, formatted
// address, distance from the search origin and favorite status.
type EnrichedService struct {
	ServiceWithType
	CountryName      string         `json:"country_name"`
	FormattedAddress string         `json:"formatted_address"`
	AddressDisplay   AddressDisplay `json:"address_display"`
	Distance         *float64       `json:"distance,omitempty"`
	IsFavorite       *bool          `json:"is_favorite,omitempty"`
}

// FavoriteService is an enriched service annotated with when the user
// favorited it.
type FavoriteService struct {
	EnrichedService
	FavoritedAt time.Time `json:"favorited_at"`
}

// FavoriteServiceRow is the raw join of user_favorites with services and
// service_types, before enrichment.
type FavoriteServiceRow struct {
	ServiceWithType
	FavoritedAt time.Time `db:"favorited_at"`
}
