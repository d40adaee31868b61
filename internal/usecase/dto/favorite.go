package dto

import (
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/pkg/utils"
)

// AddFavoriteRequest - тело запроса добавления в избранное. ServiceID
// остаётся строкой: разбор и литеральные сообщения об ошибках живут в
// use case.
type AddFavoriteRequest struct {
	ServiceID string `json:"service_id"`
}

// FavoriteListResponse - страница избранного пользователя
type FavoriteListResponse struct {
	Favorites []*domain.FavoriteService `json:"favorites"`
	utils.Pagination
}

// FavoriteStatusResponse - статус одного сервиса в избранном
type FavoriteStatusResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// ToggleFavoriteResponse - результат переключения избранного
type ToggleFavoriteResponse struct {
	IsFavorite bool                 `json:"is_favorite"`
	Favorite   *domain.UserFavorite `json:"favorite,omitempty"`
	Message    string               `json:"message"`
}

// FavoriteStatsResponse - сколько пользователей добавили сервис
type FavoriteStatsResponse struct {
	Count int `json:"count"`
}
