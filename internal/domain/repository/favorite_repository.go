package repository

import (
	"context"

	"github.com/service-directory/internal/domain"
)

// FavoriteRepository exposes per-user favorites. The (user_id, service_id)
// unique index is the authoritative guard against duplicates; Add remaps a
// concurrent duplicate insert to ErrAlreadyFavorite instead of leaking the
// constraint violation.
type FavoriteRepository interface {
	// Add inserts a favorite and returns the stored row.
	Add(ctx context.Context, userID, serviceID int64) (*domain.UserFavorite, error)

	// Remove deletes a favorite, returning ErrNotFavorite when absent.
	Remove(ctx context.Context, userID, serviceID int64) error

	// IsFavorite reports whether the pair exists.
	IsFavorite(ctx context.Context, userID, serviceID int64) (bool, error)

	// FilterFavorited returns the subset of serviceIDs the user favorited,
	// in one query.
	FilterFavorited(ctx context.Context, userID int64, serviceIDs []int64) (map[int64]bool, error)

	// ListByUser returns one page of the user's favorites joined with the
	// service and type rows, newest favorite first.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.FavoriteServiceRow, error)

	// CountByUser returns the user's favorite count.
	CountByUser(ctx context.Context, userID int64) (int, error)

	// CountByService returns how many users favorited a service.
	CountByService(ctx context.Context, serviceID int64) (int, error)

	// Clear removes all favorites of a user.
	Clear(ctx context.Context, userID int64) error
}
