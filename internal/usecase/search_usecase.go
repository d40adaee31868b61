package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/service-directory/internal/config"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/pkg/utils"
	"github.com/service-directory/internal/usecase/dto"
)

// SearchUseCase - радиусный поиск сервисов с фильтрами, сортировкой по
// дистанции и пагинацией
type SearchUseCase struct {
	serviceRepo  repository.ServiceRepository
	favoriteRepo repository.FavoriteRepository
	cacheRepo    repository.CacheRepository
	enricher     *Enricher
	logger       *zap.Logger
	searchCfg    config.SearchConfig
	popularTTL   time.Duration
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	serviceRepo repository.ServiceRepository,
	favoriteRepo repository.FavoriteRepository,
	cacheRepo repository.CacheRepository,
	enricher *Enricher,
	logger *zap.Logger,
	searchCfg config.SearchConfig,
	popularTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		serviceRepo:  serviceRepo,
		favoriteRepo: favoriteRepo,
		cacheRepo:    cacheRepo,
		enricher:     enricher,
		logger:       logger,
		searchCfg:    searchCfg,
		popularTTL:   popularTTL,
	}
}

// ValidateSearchParams parses raw query parameters into a SearchQuery.
// Every rejection carries its fixed message: the texts are API contract
// and the HTTP boundary maps them to 400 as-is.
func (uc *SearchUseCase) ValidateSearchParams(params dto.SearchServicesParams) (*dto.SearchQuery, error) {
	if params.Latitude == "" || params.Longitude == "" {
		return nil, errors.ErrCoordinatesRequired
	}

	lat, err := strconv.ParseFloat(params.Latitude, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, errors.ErrInvalidLatitude
	}

	lng, err := strconv.ParseFloat(params.Longitude, 64)
	if err != nil || lng < -180 || lng > 180 {
		return nil, errors.ErrInvalidLongitude
	}

	radius := uc.searchCfg.DefaultRadiusKm
	if params.Radius != "" {
		radius, err = strconv.ParseFloat(params.Radius, 64)
		if err != nil || radius <= 0 || radius > uc.searchCfg.MaxRadiusKm {
			return nil, errors.ErrInvalidRadius
		}
	}

	limit := uc.searchCfg.DefaultLimit
	if params.Limit != "" {
		limit, err = strconv.Atoi(params.Limit)
		if err != nil || limit <= 0 || limit > uc.searchCfg.MaxLimit {
			return nil, errors.ErrInvalidLimit
		}
	}

	page := 1
	if params.Page != "" {
		page, err = strconv.Atoi(params.Page)
		if err != nil || page < 1 {
			return nil, errors.ErrInvalidPage
		}
	}

	var serviceTypeID *int64
	if params.ServiceType != "" {
		id, err := strconv.ParseInt(params.ServiceType, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.ErrInvalidServiceType
		}
		serviceTypeID = &id
	}

	return &dto.SearchQuery{
		Latitude:      lat,
		Longitude:     lng,
		RadiusKm:      radius,
		ServiceTypeID: serviceTypeID,
		Name:          params.Name,
		Limit:         limit,
		Page:          page,
	}, nil
}

// Search executes the radius-bounded, filtered, distance-ordered search.
func (uc *SearchUseCase) Search(ctx context.Context, query *dto.SearchQuery, userID *int64) (*dto.SearchServicesResponse, error) {
	origin := query.Origin()

	filter := domain.ServiceSearchFilter{
		Origin:        &origin,
		RadiusKm:      query.RadiusKm,
		ServiceTypeID: query.ServiceTypeID,
		Name:          query.Name,
		Limit:         query.Limit,
		Offset:        utils.Offset(query.Page, query.Limit),
	}

	services, total, err := uc.serviceRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to search services", zap.Error(err))
		return nil, err
	}

	enriched, err := uc.enricher.Enrich(ctx, services, &origin, userID)
	if err != nil {
		return nil, err
	}

	return &dto.SearchServicesResponse{
		Services:   enriched,
		Pagination: utils.Paginate(total, query.Page, query.Limit),
	}, nil
}

// GetByID returns one enriched service with its favorite count.
func (uc *SearchUseCase) GetByID(ctx context.Context, serviceID int64, userID *int64) (*dto.ServiceDetail, error) {
	svc, err := uc.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	enriched, err := uc.enricher.EnrichOne(ctx, svc, nil, userID)
	if err != nil {
		return nil, err
	}

	count, err := uc.favoriteRepo.CountByService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	return &dto.ServiceDetail{
		EnrichedService: *enriched,
		FavoriteCount:   count,
	}, nil
}

// GetByType returns one page of active services of a type.
func (uc *SearchUseCase) GetByType(ctx context.Context, serviceTypeID int64, limit, page int, userID *int64) ([]*domain.EnrichedService, error) {
	if serviceTypeID <= 0 {
		return nil, errors.ErrInvalidServiceType
	}
	limit, page = uc.clampPage(limit, page)

	services, err := uc.serviceRepo.ListByType(ctx, serviceTypeID, limit, utils.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	return uc.enricher.Enrich(ctx, services, nil, userID)
}

// GetPopular returns services ordered by rating then recency. Despite the
// name the ranking is rating-based, not favorite-count-based. The enriched
// page (minus per-user state) is cached.
func (uc *SearchUseCase) GetPopular(ctx context.Context, limit int, userID *int64) ([]*domain.EnrichedService, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > uc.searchCfg.MaxLimit {
		limit = uc.searchCfg.MaxLimit
	}

	enriched, err := uc.popularFromCache(ctx, limit)
	if err != nil || enriched == nil {
		services, repoErr := uc.serviceRepo.ListPopular(ctx, limit)
		if repoErr != nil {
			return nil, repoErr
		}

		enriched, repoErr = uc.enricher.Enrich(ctx, services, nil, nil)
		if repoErr != nil {
			return nil, repoErr
		}
		uc.cachePopular(ctx, limit, enriched)
	}

	// Favorite status is per-user and never cached.
	if userID != nil {
		if err := uc.enricher.annotateFavorites(ctx, enriched, *userID); err != nil {
			return nil, err
		}
	}

	return enriched, nil
}

// SearchByAddress matches the street address field only; no distance is
// involved.
func (uc *SearchUseCase) SearchByAddress(ctx context.Context, term string, limit int, userID *int64) ([]*domain.EnrichedService, error) {
	if term == "" {
		return nil, errors.ErrSearchTermRequired
	}
	if limit <= 0 {
		limit = uc.searchCfg.DefaultLimit
	}
	if limit > uc.searchCfg.MaxLimit {
		limit = uc.searchCfg.MaxLimit
	}

	services, err := uc.serviceRepo.SearchByAddress(ctx, term, limit)
	if err != nil {
		return nil, err
	}

	return uc.enricher.Enrich(ctx, services, nil, userID)
}

// ListServiceTypes returns the type catalog sorted by name.
func (uc *SearchUseCase) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	return uc.serviceRepo.ListTypes(ctx)
}

func (uc *SearchUseCase) clampPage(limit, page int) (int, int) {
	if limit <= 0 {
		limit = uc.searchCfg.DefaultLimit
	}
	if limit > uc.searchCfg.MaxLimit {
		limit = uc.searchCfg.MaxLimit
	}
	if page < 1 {
		page = 1
	}
	return limit, page
}

func (uc *SearchUseCase) popularFromCache(ctx context.Context, limit int) ([]*domain.EnrichedService, error) {
	data, err := uc.cacheRepo.Get(ctx, popularCacheKey(limit))
	if err != nil || data == nil {
		return nil, err
	}

	var enriched []*domain.EnrichedService
	if err := json.Unmarshal(data, &enriched); err != nil {
		uc.logger.Warn("Failed to decode cached popular services", zap.Error(err))
		return nil, nil
	}
	return enriched, nil
}

func (uc *SearchUseCase) cachePopular(ctx context.Context, limit int, enriched []*domain.EnrichedService) {
	data, err := json.Marshal(enriched)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, popularCacheKey(limit), data, uc.popularTTL); err != nil {
		uc.logger.Warn("Failed to cache popular services", zap.Error(err))
	}
}

func popularCacheKey(limit int) string {
	return fmt.Sprintf("services:popular:%d", limit)
}
