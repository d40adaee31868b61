package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/service-directory/internal/catalog"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/utils"
)

const unknownCountryName = "Unknown"

// Enricher decorates raw service rows with type/country/address metadata,
// distance from a search origin and per-user favorite status. It is shared
// by every read path so all responses carry the same shape.
type Enricher struct {
	divisionRepo repository.DivisionRepository
	favoriteRepo repository.FavoriteRepository
	logger       *zap.Logger
}

func NewEnricher(
	divisionRepo repository.DivisionRepository,
	favoriteRepo repository.FavoriteRepository,
	logger *zap.Logger,
) *Enricher {
	return &Enricher{
		divisionRepo: divisionRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// Enrich decorates a page of services. Division references across the
// whole page are resolved in one batch query; favorite status, when a user
// is present, in another. No per-row queries.
func (e *Enricher) Enrich(
	ctx context.Context,
	services []*domain.ServiceWithType,
	origin *domain.GeoPoint,
	userID *int64,
) ([]*domain.EnrichedService, error) {
	divisions, err := e.resolveAllDivisions(ctx, services)
	if err != nil {
		return nil, err
	}

	enriched := make([]*domain.EnrichedService, 0, len(services))
	for _, svc := range services {
		enriched = append(enriched, e.enrichOne(svc, origin, divisions))
	}

	if userID != nil {
		if err := e.annotateFavorites(ctx, enriched, *userID); err != nil {
			return nil, err
		}
	}

	return enriched, nil
}

// EnrichOne decorates a single service.
func (e *Enricher) EnrichOne(
	ctx context.Context,
	svc *domain.ServiceWithType,
	origin *domain.GeoPoint,
	userID *int64,
) (*domain.EnrichedService, error) {
	enriched, err := e.Enrich(ctx, []*domain.ServiceWithType{svc}, origin, userID)
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

func (e *Enricher) enrichOne(
	svc *domain.ServiceWithType,
	origin *domain.GeoPoint,
	divisions map[int64]*domain.AdministrativeDivision,
) *domain.EnrichedService {
	countryName := unknownCountryName
	var country *domain.Country
	if c, ok := catalog.CountryByCode(svc.CountryCode); ok {
		countryName = c.Name
		country = &c
	}

	formatted := domain.FormatAddress(svc.StreetAddress, svc.AddressComponents, country, divisions)

	out := &domain.EnrichedService{
		ServiceWithType:  *svc,
		CountryName:      countryName,
		FormattedAddress: formatted.FormattedAddress,
		AddressDisplay:   formatted.AddressDisplay,
	}

	if origin != nil {
		// Display distance is recomputed in-process; the SQL filter only
		// bounds and orders the candidate set.
		d := utils.DistanceMeters(origin.Latitude, origin.Longitude, svc.Latitude, svc.Longitude)
		out.Distance = &d
	}

	return out
}

func (e *Enricher) resolveAllDivisions(ctx context.Context, services []*domain.ServiceWithType) (map[int64]*domain.AdministrativeDivision, error) {
	seen := map[int64]struct{}{}
	var ids []int64
	for _, svc := range services {
		for _, id := range svc.AddressComponents.DivisionIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	divisions, err := e.divisionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.AdministrativeDivision, len(divisions))
	for _, d := range divisions {
		byID[d.ID] = d
	}
	return byID, nil
}

func (e *Enricher) annotateFavorites(ctx context.Context, services []*domain.EnrichedService, userID int64) error {
	ids := make([]int64, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}

	favorited, err := e.favoriteRepo.FilterFavorited(ctx, userID, ids)
	if err != nil {
		return err
	}

	for _, svc := range services {
		isFav := favorited[svc.ID]
		svc.IsFavorite = &isFav
	}
	return nil
}
