package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/pkg/utils"
	"github.com/service-directory/internal/usecase/dto"
)

// Ответные сообщения избранного - часть API-контракта.
const (
	MsgFavoriteAdded   = "Service added to favorites"
	MsgFavoriteRemoved = "Service removed from favorites"
)

// FavoriteUseCase - избранные сервисы пользователя
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	serviceRepo  repository.ServiceRepository
	enricher     *Enricher
	logger       *zap.Logger
}

// NewFavoriteUseCase - создание нового FavoriteUseCase
func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	serviceRepo repository.ServiceRepository,
	enricher *Enricher,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		serviceRepo:  serviceRepo,
		enricher:     enricher,
		logger:       logger,
	}
}

// ValidateRequest parses the add-favorite body. Messages are contract.
func (uc *FavoriteUseCase) ValidateRequest(req dto.AddFavoriteRequest) (int64, error) {
	if req.ServiceID == "" {
		return 0, errors.ErrServiceIDRequired
	}
	return uc.ValidateServiceID(req.ServiceID)
}

// ValidateServiceID parses a service id path/body parameter.
func (uc *FavoriteUseCase) ValidateServiceID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidServiceID
	}
	return id, nil
}

// Add favorites a service for a user. The existence check makes the common
// duplicate a clean 409; the unique index covers the concurrent race and
// the repository remaps that violation to the same domain error.
func (uc *FavoriteUseCase) Add(ctx context.Context, userID, serviceID int64) (*domain.UserFavorite, error) {
	if _, err := uc.serviceRepo.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}

	exists, err := uc.favoriteRepo.IsFavorite(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrAlreadyFavorite
	}

	return uc.favoriteRepo.Add(ctx, userID, serviceID)
}

// Remove unfavorites a service.
func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, serviceID int64) error {
	return uc.favoriteRepo.Remove(ctx, userID, serviceID)
}

// Toggle flips the favorite state and reports the resulting state.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, userID, serviceID int64) (*dto.ToggleFavoriteResponse, error) {
	if _, err := uc.serviceRepo.GetByID(ctx, serviceID); err != nil {
		return nil, err
	}

	exists, err := uc.favoriteRepo.IsFavorite(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}

	if exists {
		if err := uc.favoriteRepo.Remove(ctx, userID, serviceID); err != nil {
			return nil, err
		}
		return &dto.ToggleFavoriteResponse{
			IsFavorite: false,
			Message:    MsgFavoriteRemoved,
		}, nil
	}

	favorite, err := uc.favoriteRepo.Add(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleFavoriteResponse{
		IsFavorite: true,
		Favorite:   favorite,
		Message:    MsgFavoriteAdded,
	}, nil
}

// List returns one enriched page of the user's favorites, newest first.
func (uc *FavoriteUseCase) List(ctx context.Context, userID int64, limit, page int) (*dto.FavoriteListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}

	total, err := uc.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.favoriteRepo.ListByUser(ctx, userID, limit, utils.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	services := make([]*domain.ServiceWithType, 0, len(rows))
	for _, row := range rows {
		svc := row.ServiceWithType
		services = append(services, &svc)
	}

	enriched, err := uc.enricher.Enrich(ctx, services, nil, nil)
	if err != nil {
		return nil, err
	}

	favorites := make([]*domain.FavoriteService, 0, len(rows))
	for i, row := range rows {
		favorites = append(favorites, &domain.FavoriteService{
			EnrichedService: *enriched[i],
			FavoritedAt:     row.FavoritedAt,
		})
	}

	return &dto.FavoriteListResponse{
		Favorites:  favorites,
		Pagination: utils.Paginate(total, page, limit),
	}, nil
}

// Status reports whether the service is in the user's favorites.
func (uc *FavoriteUseCase) Status(ctx context.Context, userID, serviceID int64) (*dto.FavoriteStatusResponse, error) {
	isFavorite, err := uc.favoriteRepo.IsFavorite(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatusResponse{IsFavorite: isFavorite}, nil
}

// Clear removes every favorite of the user.
func (uc *FavoriteUseCase) Clear(ctx context.Context, userID int64) error {
	return uc.favoriteRepo.Clear(ctx, userID)
}

// Stats returns how many users favorited a service.
func (uc *FavoriteUseCase) Stats(ctx context.Context, serviceID int64) (*dto.FavoriteStatsResponse, error) {
	count, err := uc.favoriteRepo.CountByService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatsResponse{Count: count}, nil
}
