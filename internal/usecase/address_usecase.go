package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/service-directory/internal/catalog"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
)

// AddressUseCase - каталог стран, административные деления и
// форматирование адресов
type AddressUseCase struct {
	divisionRepo repository.DivisionRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

// NewAddressUseCase - создание нового AddressUseCase
func NewAddressUseCase(
	divisionRepo repository.DivisionRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *AddressUseCase {
	return &AddressUseCase{
		divisionRepo: divisionRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// Countries returns the static country catalog in file order.
func (uc *AddressUseCase) Countries() []domain.Country {
	return catalog.Countries()
}

// Country looks up one country by code.
func (uc *AddressUseCase) Country(code string) (domain.Country, bool) {
	return catalog.CountryByCode(code)
}

// ListDivisions returns a country's divisions with trinary parent
// semantics. The unfiltered listing is cached: the division table is
// reference data and the full per-country scan is the hot path.
func (uc *AddressUseCase) ListDivisions(ctx context.Context, countryCode string, parent *domain.DivisionParentFilter) ([]*domain.AdministrativeDivision, error) {
	cacheable := parent == nil
	cacheKey := fmt.Sprintf("divisions:%s:all", countryCode)

	if cacheable {
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var divisions []*domain.AdministrativeDivision
			if err := json.Unmarshal(data, &divisions); err == nil {
				return divisions, nil
			}
			uc.logger.Warn("Failed to decode cached divisions", zap.String("key", cacheKey))
		}
	}

	divisions, err := uc.divisionRepo.List(ctx, countryCode, parent)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, err := json.Marshal(divisions); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache divisions", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return divisions, nil
}

// ListDivisionsByLevel returns a country's divisions of one depth.
func (uc *AddressUseCase) ListDivisionsByLevel(ctx context.Context, countryCode string, level int) ([]*domain.AdministrativeDivision, error) {
	return uc.divisionRepo.ListByLevel(ctx, countryCode, level)
}

// SearchDivisions - подстрочный поиск делений внутри страны
func (uc *AddressUseCase) SearchDivisions(ctx context.Context, countryCode, term, divisionType string, limit int) ([]*domain.AdministrativeDivision, error) {
	if term == "" {
		return nil, errors.ErrSearchTermRequired
	}
	if limit <= 0 {
		limit = 20
	}
	return uc.divisionRepo.Search(ctx, countryCode, term, divisionType, limit)
}

// Format renders the formatted address and display map for a service
// address. Unknown country degrades to the raw street address.
func (uc *AddressUseCase) Format(ctx context.Context, streetAddress string, components domain.AddressComponents, countryCode string) (*domain.FormattedAddress, error) {
	country, ok := catalog.CountryByCode(countryCode)
	if !ok {
		formatted := domain.FormatAddress(streetAddress, components, nil, nil)
		return &formatted, nil
	}

	divisions, err := uc.resolveComponents(ctx, components)
	if err != nil {
		return nil, err
	}

	formatted := domain.FormatAddress(streetAddress, components, &country, divisions)
	return &formatted, nil
}

// Validate checks components against the country schema.
func (uc *AddressUseCase) Validate(ctx context.Context, components domain.AddressComponents, countryCode string) (*domain.AddressValidation, error) {
	country, ok := catalog.CountryByCode(countryCode)
	if !ok {
		v := domain.ValidateComponents(components, nil, nil)
		return &v, nil
	}

	divisions, err := uc.resolveComponents(ctx, components)
	if err != nil {
		return nil, err
	}

	v := domain.ValidateComponents(components, &country, divisions)
	return &v, nil
}

// resolveComponents batch-loads every referenced division into an id index.
func (uc *AddressUseCase) resolveComponents(ctx context.Context, components domain.AddressComponents) (map[int64]*domain.AdministrativeDivision, error) {
	divisions, err := uc.divisionRepo.FindByIDs(ctx, components.DivisionIDs())
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.AdministrativeDivision, len(divisions))
	for _, d := range divisions {
		byID[d.ID] = d
	}
	return byID, nil
}
