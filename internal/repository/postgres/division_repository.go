package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

const divisionColumns = `id, name, type, level, parent_id, country_code, latitude, longitude, created_at`

type divisionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDivisionRepository(db *DB) repository.DivisionRepository {
	return &divisionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *divisionRepository) List(ctx context.Context, countryCode string, parent *domain.DivisionParentFilter) ([]*domain.AdministrativeDivision, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM administrative_divisions
		WHERE country_code = $1
	`, divisionColumns)
	args := []interface{}{countryCode}

	// Trinary parent semantics: nil filter keeps every division, a root
	// filter keeps only parentless rows, an id filter only direct children.
	if parent != nil {
		if parent.Root {
			query += " AND parent_id IS NULL"
		} else {
			query += " AND parent_id = $2"
			args = append(args, parent.ID)
		}
	}

	query += " ORDER BY name ASC"

	divisions := []*domain.AdministrativeDivision{}
	if err := r.db.SelectContext(ctx, &divisions, query, args...); err != nil {
		r.logger.Error("Failed to list divisions", zap.String("country_code", countryCode), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return divisions, nil
}

func (r *divisionRepository) ListByLevel(ctx context.Context, countryCode string, level int) ([]*domain.AdministrativeDivision, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM administrative_divisions
		WHERE country_code = $1 AND level = $2
		ORDER BY name ASC
	`, divisionColumns)

	divisions := []*domain.AdministrativeDivision{}
	if err := r.db.SelectContext(ctx, &divisions, query, countryCode, level); err != nil {
		r.logger.Error("Failed to list divisions by level",
			zap.String("country_code", countryCode), zap.Int("level", level), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return divisions, nil
}

func (r *divisionRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.AdministrativeDivision, error) {
	if len(ids) == 0 {
		return []*domain.AdministrativeDivision{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM administrative_divisions
		WHERE id = ANY($1)
	`, divisionColumns)

	divisions := []*domain.AdministrativeDivision{}
	if err := r.db.SelectContext(ctx, &divisions, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to find divisions by ids", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return divisions, nil
}

func (r *divisionRepository) Search(ctx context.Context, countryCode, term, divisionType string, limit int) ([]*domain.AdministrativeDivision, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM administrative_divisions
		WHERE country_code = $1 AND name ILIKE $2
	`, divisionColumns)
	args := []interface{}{countryCode, "%" + term + "%"}
	argIdx := 3

	if divisionType != "" {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, divisionType)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d", argIdx)
	args = append(args, limit)

	divisions := []*domain.AdministrativeDivision{}
	if err := r.db.SelectContext(ctx, &divisions, query, args...); err != nil {
		r.logger.Error("Failed to search divisions",
			zap.String("country_code", countryCode), zap.String("term", term), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return divisions, nil
}

func (r *divisionRepository) Create(ctx context.Context, division *domain.AdministrativeDivision) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if division.ParentID != nil {
		var parent domain.AdministrativeDivision
		err := tx.GetContext(ctx, &parent, fmt.Sprintf(`
			SELECT %s
			FROM administrative_divisions
			WHERE id = $1
		`, divisionColumns), *division.ParentID)
		if err == sql.ErrNoRows {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"reason":    "parent division does not exist",
				"parent_id": *division.ParentID,
			})
		}
		if err != nil {
			r.logger.Error("Failed to load parent division", zap.Int64("parent_id", *division.ParentID), zap.Error(err))
			return errors.ErrDatabaseError
		}

		// Forest invariants: same country, contiguous depth.
		if parent.CountryCode != division.CountryCode {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"reason":         "parent division belongs to another country",
				"parent_country": parent.CountryCode,
			})
		}
		if division.Level != parent.Level+1 {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"reason":       "division level must be parent level + 1",
				"parent_level": parent.Level,
			})
		}
	} else if division.Level != 1 {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "root division must have level 1",
		})
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO administrative_divisions (name, type, level, parent_id, country_code, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`,
		division.Name, division.Type, division.Level, division.ParentID,
		division.CountryCode, division.Latitude, division.Longitude,
	).Scan(&division.ID, &division.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create division", zap.String("name", division.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit division insert", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
