package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

const serviceColumns = `
	s.id, s.name, s.service_type_id, s.street_address, s.address_components,
	s.country_code, s.latitude, s.longitude, s.phone, s.website, s.rating,
	s.is_active, s.created_at, s.updated_at,
	st.name AS service_type_name, st.icon AS service_type_icon`

// distanceExpr is the in-database great-circle distance in kilometers.
// It uses the same Earth radius (6371 km) as utils.HaversineKm so the SQL
// radius filter and the in-process display distance agree. LEAST guards
// acos against arguments that drift above 1 from float rounding on
// identical points.
const distanceExpr = `(6371 * acos(LEAST(1.0,
	cos(radians(%[1]s)) * cos(radians(s.latitude)) *
	cos(radians(s.longitude) - radians(%[2]s)) +
	sin(radians(%[1]s)) * sin(radians(s.latitude)))))`

type serviceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewServiceRepository(db *DB) repository.ServiceRepository {
	return &serviceRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceWithType, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM services s
		JOIN service_types st ON st.id = s.service_type_id
		WHERE s.id = $1
	`, serviceColumns)

	var svc domain.ServiceWithType
	err := r.db.GetContext(ctx, &svc, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrServiceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get service by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &svc, nil
}

func (r *serviceRepository) Search(ctx context.Context, filter domain.ServiceSearchFilter) ([]*domain.ServiceWithType, int, error) {
	where := "s.is_active = TRUE"
	args := []interface{}{}
	argIdx := 1

	orderBy := "s.id ASC"
	if filter.Origin != nil {
		latPh := fmt.Sprintf("$%d", argIdx)
		lonPh := fmt.Sprintf("$%d", argIdx+1)
		args = append(args, filter.Origin.Latitude, filter.Origin.Longitude)
		argIdx += 2

		dist := fmt.Sprintf(distanceExpr, latPh, lonPh)
		where += fmt.Sprintf(" AND %s <= $%d", dist, argIdx)
		args = append(args, filter.RadiusKm)
		argIdx++

		// Nearest-first ordering is the contract, not an optimization.
		orderBy = dist + " ASC"
	}

	if filter.ServiceTypeID != nil {
		where += fmt.Sprintf(" AND s.service_type_id = $%d", argIdx)
		args = append(args, *filter.ServiceTypeID)
		argIdx++
	}

	if filter.Name != "" {
		where += fmt.Sprintf(" AND s.name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Name+"%")
		argIdx++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM services s
		WHERE %s
	`, where)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count services", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM services s
		JOIN service_types st ON st.id = s.service_type_id
		WHERE %s
		ORDER BY %s
		OFFSET $%d LIMIT $%d
	`, serviceColumns, where, orderBy, argIdx, argIdx+1)
	args = append(args, filter.Offset, filter.Limit)

	var services []*domain.ServiceWithType
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		r.logger.Error("Failed to search services", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return services, total, nil
}

func (r *serviceRepository) ListByType(ctx context.Context, serviceTypeID int64, limit, offset int) ([]*domain.ServiceWithType, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM services s
		JOIN service_types st ON st.id = s.service_type_id
		WHERE s.is_active = TRUE AND s.service_type_id = $1
		ORDER BY s.name ASC
		OFFSET $2 LIMIT $3
	`, serviceColumns)

	var services []*domain.ServiceWithType
	if err := r.db.SelectContext(ctx, &services, query, serviceTypeID, offset, limit); err != nil {
		r.logger.Error("Failed to list services by type",
			zap.Int64("service_type_id", serviceTypeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return services, nil
}

func (r *serviceRepository) ListPopular(ctx context.Context, limit int) ([]*domain.ServiceWithType, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM services s
		JOIN service_types st ON st.id = s.service_type_id
		WHERE s.is_active = TRUE
		ORDER BY s.rating DESC, s.created_at DESC
		LIMIT $1
	`, serviceColumns)

	var services []*domain.ServiceWithType
	if err := r.db.SelectContext(ctx, &services, query, limit); err != nil {
		r.logger.Error("Failed to list popular services", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return services, nil
}

func (r *serviceRepository) SearchByAddress(ctx context.Context, term string, limit int) ([]*domain.ServiceWithType, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM services s
		JOIN service_types st ON st.id = s.service_type_id
		WHERE s.is_active = TRUE AND s.street_address ILIKE $1
		ORDER BY s.name ASC
		LIMIT $2
	`, serviceColumns)

	var services []*domain.ServiceWithType
	if err := r.db.SelectContext(ctx, &services, query, "%"+term+"%", limit); err != nil {
		r.logger.Error("Failed to search services by address", zap.String("term", term), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return services, nil
}

func (r *serviceRepository) ListTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	query := `
		SELECT id, name, description, icon, created_at
		FROM service_types
		ORDER BY name ASC
	`

	var types []*domain.ServiceType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		r.logger.Error("Failed to list service types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return types, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	query := `
		INSERT INTO services (
			name, service_type_id, street_address, address_components,
			country_code, latitude, longitude, phone, website, rating, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		service.Name, service.ServiceTypeID, service.StreetAddress,
		service.AddressComponents, service.CountryCode,
		service.Latitude, service.Longitude,
		service.Phone, service.Website, service.Rating, service.IsActive,
	).Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create service", zap.String("name", service.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *serviceRepository) CreateType(ctx context.Context, serviceType *domain.ServiceType) error {
	query := `
		INSERT INTO service_types (name, description, icon)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		serviceType.Name, serviceType.Description, serviceType.Icon,
	).Scan(&serviceType.ID, &serviceType.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create service type", zap.String("name", serviceType.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
