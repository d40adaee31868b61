package postgres

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, serviceID int64) (*domain.UserFavorite, error) {
	query := `
		INSERT INTO user_favorites (user_id, service_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	favorite := &domain.UserFavorite{
		UserID:    userID,
		ServiceID: serviceID,
	}
	err := r.db.QueryRowContext(ctx, query, userID, serviceID).
		Scan(&favorite.ID, &favorite.CreatedAt)
	if err != nil {
		// Two concurrent adds race past the use-case existence check; the
		// unique index decides the winner and the loser gets the domain
		// error, not the constraint violation.
		if isUniqueViolation(err) {
			return nil, errors.ErrAlreadyFavorite
		}
		r.logger.Error("Failed to add favorite",
			zap.Int64("user_id", userID), zap.Int64("service_id", serviceID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return favorite, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, serviceID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM user_favorites
		WHERE user_id = $1 AND service_id = $2
	`, userID, serviceID)
	if err != nil {
		r.logger.Error("Failed to remove favorite",
			zap.Int64("user_id", userID), zap.Int64("service_id", serviceID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrNotFavorite
	}

	return nil
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, userID, serviceID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_favorites WHERE user_id = $1 AND service_id = $2
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, serviceID); err != nil {
		r.logger.Error("Failed to check favorite",
			zap.Int64("user_id", userID), zap.Int64("service_id", serviceID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

func (r *favoriteRepository) FilterFavorited(ctx context.Context, userID int64, serviceIDs []int64) (map[int64]bool, error) {
	favorited := make(map[int64]bool, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return favorited, nil
	}

	query := `
		SELECT service_id
		FROM user_favorites
		WHERE user_id = $1 AND service_id = ANY($2)
	`

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, userID, pq.Array(serviceIDs)); err != nil {
		r.logger.Error("Failed to filter favorited services", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, id := range ids {
		favorited[id] = true
	}
	return favorited, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.FavoriteServiceRow, error) {
	query := fmt.Sprintf(`
		SELECT %s, f.created_at AS favorited_at
		FROM user_favorites f
		JOIN services s ON s.id = f.service_id
		JOIN service_types st ON st.id = s.service_type_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		OFFSET $2 LIMIT $3
	`, serviceColumns)

	favorites := []*domain.FavoriteServiceRow{}
	if err := r.db.SelectContext(ctx, &favorites, query, userID, offset, limit); err != nil {
		r.logger.Error("Failed to list favorites", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return favorites, nil
}

func (r *favoriteRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_favorites WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error("Failed to count user favorites", zap.Int64("user_id", userID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}

func (r *favoriteRepository) CountByService(ctx context.Context, serviceID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_favorites WHERE service_id = $1`, serviceID)
	if err != nil {
		r.logger.Error("Failed to count service favorites", zap.Int64("service_id", serviceID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}

func (r *favoriteRepository) Clear(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM user_favorites WHERE user_id = $1`, userID); err != nil {
		r.logger.Error("Failed to clear favorites", zap.Int64("user_id", userID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
