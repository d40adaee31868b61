package repository

import (
	"context"

	"github.com/service-directory/internal/domain"
)

// ServiceRepository exposes the service catalog.
type ServiceRepository interface {
	// GetByID returns a single active-or-inactive service joined with its type.
	GetByID(ctx context.Context, id int64) (*domain.ServiceWithType, error)

	// Search returns one page of the filtered candidate set plus the total
	// count before pagination. Results are ordered nearest-first when the
	// filter carries an origin.
	Search(ctx context.Context, filter domain.ServiceSearchFilter) ([]*domain.ServiceWithType, int, error)

	// ListByType returns a page of active services of one type.
	ListByType(ctx context.Context, serviceTypeID int64, limit, offset int) ([]*domain.ServiceWithType, error)

	// ListPopular returns active services ordered by rating then recency.
	ListPopular(ctx context.Context, limit int) ([]*domain.ServiceWithType, error)

	// SearchByAddress matches active services whose street address contains
	// the term, case-insensitively.
	SearchByAddress(ctx context.Context, term string, limit int) ([]*domain.ServiceWithType, error)

	// ListTypes returns all service types sorted by name.
	ListTypes(ctx context.Context) ([]*domain.ServiceType, error)

	// Create inserts a service (seed/admin path).
	Create(ctx context.Context, service *domain.Service) error

	// CreateType inserts a service type (seed/admin path).
	CreateType(ctx context.Context, serviceType *domain.ServiceType) error
}
