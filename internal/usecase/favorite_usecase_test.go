package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/usecase"
	"github.com/service-directory/internal/usecase/dto"
)

func newFavoriteUseCase(
	favoriteRepo *MockFavoriteRepository,
	serviceRepo *MockServiceRepository,
	divisionRepo *MockDivisionRepository,
) *usecase.FavoriteUseCase {
	logger := zap.NewNop()
	enricher := usecase.NewEnricher(divisionRepo, favoriteRepo, logger)
	return usecase.NewFavoriteUseCase(favoriteRepo, serviceRepo, enricher, logger)
}

func TestFavoriteUseCase_ValidateRequest(t *testing.T) {
	uc := newFavoriteUseCase(&MockFavoriteRepository{}, &MockServiceRepository{}, &MockDivisionRepository{})

	t.Run("empty service id", func(t *testing.T) {
		_, err := uc.ValidateRequest(dto.AddFavoriteRequest{})
		assert.Equal(t, errors.ErrServiceIDRequired, err)
	})

	t.Run("non-numeric service id", func(t *testing.T) {
		_, err := uc.ValidateRequest(dto.AddFavoriteRequest{ServiceID: "abc"})
		assert.Equal(t, errors.ErrInvalidServiceID, err)
	})

	t.Run("negative service id", func(t *testing.T) {
		_, err := uc.ValidateRequest(dto.AddFavoriteRequest{ServiceID: "-3"})
		assert.Equal(t, errors.ErrInvalidServiceID, err)
	})

	t.Run("valid service id", func(t *testing.T) {
		id, err := uc.ValidateRequest(dto.AddFavoriteRequest{ServiceID: "42"})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})
}

func TestFavoriteUseCase_Add(t *testing.T) {
	ctx := context.Background()

	svc := &domain.ServiceWithType{
		Service: domain.Service{ID: 10, Name: "Cafe Giang"},
	}

	t.Run("success", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		serviceRepo := &MockServiceRepository{}
		uc := newFavoriteUseCase(favoriteRepo, serviceRepo, &MockDivisionRepository{})

		serviceRepo.On("GetByID", ctx, int64(10)).Return(svc, nil)
		favoriteRepo.On("IsFavorite", ctx, int64(1), int64(10)).Return(false, nil)
		favoriteRepo.On("Add", ctx, int64(1), int64(10)).
			Return(&domain.UserFavorite{ID: 99, UserID: 1, ServiceID: 10}, nil)

		favorite, err := uc.Add(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(99), favorite.ID)
	})

	t.Run("service does not exist", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		serviceRepo := &MockServiceRepository{}
		uc := newFavoriteUseCase(favoriteRepo, serviceRepo, &MockDivisionRepository{})

		serviceRepo.On("GetByID", ctx, int64(404)).Return(nil, errors.ErrServiceNotFound)

		_, err := uc.Add(ctx, 1, 404)
		assert.Equal(t, errors.ErrServiceNotFound, err)
		favoriteRepo.AssertNotCalled(t, "Add")
	})

	t.Run("already favorited", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		serviceRepo := &MockServiceRepository{}
		uc := newFavoriteUseCase(favoriteRepo, serviceRepo, &MockDivisionRepository{})

		serviceRepo.On("GetByID", ctx, int64(10)).Return(svc, nil)
		favoriteRepo.On("IsFavorite", ctx, int64(1), int64(10)).Return(true, nil)

		_, err := uc.Add(ctx, 1, 10)
		assert.Equal(t, errors.ErrAlreadyFavorite, err)
		favoriteRepo.AssertNotCalled(t, "Add")
	})

	t.Run("concurrent duplicate surfaces the same error", func(t *testing.T) {
		// The pre-check saw no favorite but a concurrent insert won the
		// race; the repository remaps the unique violation.
		favoriteRepo := &MockFavoriteRepository{}
		serviceRepo := &MockServiceRepository{}
		uc := newFavoriteUseCase(favoriteRepo, serviceRepo, &MockDivisionRepository{})

		serviceRepo.On("GetByID", ctx, int64(10)).Return(svc, nil)
		favoriteRepo.On("IsFavorite", ctx, int64(1), int64(10)).Return(false, nil)
		favoriteRepo.On("Add", ctx, int64(1), int64(10)).Return(nil, errors.ErrAlreadyFavorite)

		_, err := uc.Add(ctx, 1, 10)
		assert.Equal(t, errors.ErrAlreadyFavorite, err)
	})
}

func TestFavoriteUseCase_Toggle(t *testing.T) {
	ctx := context.Background()

	svc := &domain.ServiceWithType{
		Service: domain.Service{ID: 10, Name: "Cafe Giang"},
	}

	t.Run("toggles on when absent", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		serviceRepo := &MockServiceRepository{}
		uc := newFavoriteUseCase(favoriteRepo, serviceRepo, &MockDivisionRepository{})

		serviceRepo.On("GetByID", ctx, int64(10)).Return(svc, nil)
		favoriteRepo.On("IsFavorite", ctx, int64(1), int64(10)).Return(false, nil)
		favoriteRepo.On("Add", ctx, int64(1), int64(10)).
			Return(&domain.UserFavorite{ID: 5, UserID: 1, ServiceID: 10}, nil)

		result, err := uc.Toggle(ctx, 1, 10)
		assert.NoError(t, err)
		assert.True(t, result.IsFavorite)
		assert.Equal(t, "Service added to favorites", result.Message)
		assert.NotNil(t, result.Favorite)
	})

	t.Run("toggles off when present", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		serviceRepo := &MockServiceRepository{}
		uc := newFavoriteUseCase(favoriteRepo, serviceRepo, &MockDivisionRepository{})

		serviceRepo.On("GetByID", ctx, int64(10)).Return(svc, nil)
		favoriteRepo.On("IsFavorite", ctx, int64(1), int64(10)).Return(true, nil)
		favoriteRepo.On("Remove", ctx, int64(1), int64(10)).Return(nil)

		result, err := uc.Toggle(ctx, 1, 10)
		assert.NoError(t, err)
		assert.False(t, result.IsFavorite)
		assert.Equal(t, "Service removed from favorites", result.Message)
		assert.Nil(t, result.Favorite)
	})
}

func TestFavoriteUseCase_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("not in favorites", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		uc := newFavoriteUseCase(favoriteRepo, &MockServiceRepository{}, &MockDivisionRepository{})

		favoriteRepo.On("Remove", ctx, int64(1), int64(10)).Return(errors.ErrNotFavorite)

		err := uc.Remove(ctx, 1, 10)
		assert.Equal(t, errors.ErrNotFavorite, err)
	})
}

func TestFavoriteUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns enriched page newest first", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		divisionRepo := &MockDivisionRepository{}
		uc := newFavoriteUseCase(favoriteRepo, &MockServiceRepository{}, divisionRepo)

		newest := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		older := newest.Add(-48 * time.Hour)
		rows := []*domain.FavoriteServiceRow{
			{
				ServiceWithType: domain.ServiceWithType{Service: domain.Service{
					ID: 2, Name: "Quan An Ngon", CountryCode: "VN",
					AddressComponents: domain.AddressComponents{},
				}},
				FavoritedAt: newest,
			},
			{
				ServiceWithType: domain.ServiceWithType{Service: domain.Service{
					ID: 1, Name: "Cafe Giang", CountryCode: "VN",
					AddressComponents: domain.AddressComponents{},
				}},
				FavoritedAt: older,
			},
		}

		favoriteRepo.On("CountByUser", ctx, int64(1)).Return(2, nil)
		favoriteRepo.On("ListByUser", ctx, int64(1), 20, 0).Return(rows, nil)
		divisionRepo.On("FindByIDs", ctx, mock.Anything).Return([]*domain.AdministrativeDivision{}, nil)

		result, err := uc.List(ctx, 1, 20, 1)
		assert.NoError(t, err)
		assert.Len(t, result.Favorites, 2)
		assert.Equal(t, int64(2), result.Favorites[0].ID)
		assert.Equal(t, newest, result.Favorites[0].FavoritedAt)
		assert.Equal(t, "Vietnam", result.Favorites[0].CountryName)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.TotalPages)
	})

	t.Run("empty list", func(t *testing.T) {
		favoriteRepo := &MockFavoriteRepository{}
		divisionRepo := &MockDivisionRepository{}
		uc := newFavoriteUseCase(favoriteRepo, &MockServiceRepository{}, divisionRepo)

		favoriteRepo.On("CountByUser", ctx, int64(1)).Return(0, nil)
		favoriteRepo.On("ListByUser", ctx, int64(1), 20, 0).Return([]*domain.FavoriteServiceRow{}, nil)
		divisionRepo.On("FindByIDs", ctx, mock.Anything).Return([]*domain.AdministrativeDivision{}, nil)

		result, err := uc.List(ctx, 1, 20, 1)
		assert.NoError(t, err)
		assert.Empty(t, result.Favorites)
		assert.Equal(t, 0, result.Total)
		assert.Equal(t, 0, result.TotalPages)
		assert.False(t, result.HasNext)
	})
}

func TestFavoriteUseCase_Status(t *testing.T) {
	ctx := context.Background()

	favoriteRepo := &MockFavoriteRepository{}
	uc := newFavoriteUseCase(favoriteRepo, &MockServiceRepository{}, &MockDivisionRepository{})

	favoriteRepo.On("IsFavorite", ctx, int64(1), int64(10)).Return(true, nil)

	result, err := uc.Status(ctx, 1, 10)
	assert.NoError(t, err)
	assert.True(t, result.IsFavorite)
}

func TestFavoriteUseCase_Stats(t *testing.T) {
	ctx := context.Background()

	favoriteRepo := &MockFavoriteRepository{}
	uc := newFavoriteUseCase(favoriteRepo, &MockServiceRepository{}, &MockDivisionRepository{})

	favoriteRepo.On("CountByService", ctx, int64(10)).Return(7, nil)

	result, err := uc.Stats(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, 7, result.Count)
}
