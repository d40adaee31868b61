package dto

import (
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/pkg/utils"
)

// SearchServicesParams - сырые query-параметры поиска до валидации.
// Значения остаются строками: валидация с литеральными сообщениями
// происходит в use case, а не в роутере.
type SearchServicesParams struct {
	Latitude    string
	Longitude   string
	Radius      string
	ServiceType string
	Name        string
	Limit       string
	Page        string
}

// SearchQuery - провалидированный поисковый запрос
type SearchQuery struct {
	Latitude      float64
	Longitude     float64
	RadiusKm      float64
	ServiceTypeID *int64
	Name          string
	Limit         int
	Page          int
}

// Origin returns the search origin as a GeoPoint.
func (q *SearchQuery) Origin() domain.GeoPoint {
	return domain.GeoPoint{Latitude: q.Latitude, Longitude: q.Longitude}
}

// SearchServicesResponse - страница результатов поиска
type SearchServicesResponse struct {
	Services []*domain.EnrichedService `json:"services"`
	utils.Pagination
}

// ServiceDetail - одиночный сервис с количеством добавлений в избранное
type ServiceDetail struct {
	domain.EnrichedService
	FavoriteCount int `json:"favorite_count"`
}
