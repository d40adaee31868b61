package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/service-directory/internal/domain"
)

// MockServiceRepository is a mock of ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceWithType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceWithType), args.Error(1)
}

func (m *MockServiceRepository) Search(ctx context.Context, filter domain.ServiceSearchFilter) ([]*domain.ServiceWithType, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.ServiceWithType), args.Int(1), args.Error(2)
}

func (m *MockServiceRepository) ListByType(ctx context.Context, serviceTypeID int64, limit, offset int) ([]*domain.ServiceWithType, error) {
	args := m.Called(ctx, serviceTypeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceWithType), args.Error(1)
}

func (m *MockServiceRepository) ListPopular(ctx context.Context, limit int) ([]*domain.ServiceWithType, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceWithType), args.Error(1)
}

func (m *MockServiceRepository) SearchByAddress(ctx context.Context, term string, limit int) ([]*domain.ServiceWithType, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceWithType), args.Error(1)
}

func (m *MockServiceRepository) ListTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceType), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) CreateType(ctx context.Context, serviceType *domain.ServiceType) error {
	args := m.Called(ctx, serviceType)
	return args.Error(0)
}

// MockDivisionRepository is a mock of DivisionRepository
type MockDivisionRepository struct {
	mock.Mock
}

func (m *MockDivisionRepository) List(ctx context.Context, countryCode string, parent *domain.DivisionParentFilter) ([]*domain.AdministrativeDivision, error) {
	args := m.Called(ctx, countryCode, parent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AdministrativeDivision), args.Error(1)
}

func (m *MockDivisionRepository) ListByLevel(ctx context.Context, countryCode string, level int) ([]*domain.AdministrativeDivision, error) {
	args := m.Called(ctx, countryCode, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AdministrativeDivision), args.Error(1)
}

func (m *MockDivisionRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.AdministrativeDivision, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AdministrativeDivision), args.Error(1)
}

func (m *MockDivisionRepository) Search(ctx context.Context, countryCode, term, divisionType string, limit int) ([]*domain.AdministrativeDivision, error) {
	args := m.Called(ctx, countryCode, term, divisionType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AdministrativeDivision), args.Error(1)
}

func (m *MockDivisionRepository) Create(ctx context.Context, division *domain.AdministrativeDivision) error {
	args := m.Called(ctx, division)
	return args.Error(0)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, email, username string) (bool, error) {
	args := m.Called(ctx, email, username)
	return args.Bool(0), args.Error(1)
}

// MockFavoriteRepository is a mock of FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, serviceID int64) (*domain.UserFavorite, error) {
	args := m.Called(ctx, userID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserFavorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, serviceID int64) error {
	args := m.Called(ctx, userID, serviceID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) IsFavorite(ctx context.Context, userID, serviceID int64) (bool, error) {
	args := m.Called(ctx, userID, serviceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) FilterFavorited(ctx context.Context, userID int64, serviceIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, serviceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.FavoriteServiceRow, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FavoriteServiceRow), args.Error(1)
}

func (m *MockFavoriteRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockFavoriteRepository) CountByService(ctx context.Context, serviceID int64) (int, error) {
	args := m.Called(ctx, serviceID)
	return args.Int(0), args.Error(1)
}

func (m *MockFavoriteRepository) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func ptrInt64(v int64) *int64 { return &v }
