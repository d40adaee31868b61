package repository

import (
	"context"

	"github.com/service-directory/internal/domain"
)

// DivisionRepository exposes the per-country administrative hierarchy.
// A country without divisions yields empty slices, never an error.
type DivisionRepository interface {
	// List returns divisions of a country sorted by name. The parent filter
	// is trinary: nil returns all divisions, a Root filter only divisions
	// without a parent, an ID filter only direct children of that division.
	List(ctx context.Context, countryCode string, parent *domain.DivisionParentFilter) ([]*domain.AdministrativeDivision, error)

	// ListByLevel returns a country's divisions of one depth, sorted by name.
	ListByLevel(ctx context.Context, countryCode string, level int) ([]*domain.AdministrativeDivision, error)

	// FindByIDs batch-resolves divisions. Empty input returns an empty slice
	// without touching the database.
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.AdministrativeDivision, error)

	// Search does a case-insensitive substring match on name within a
	// country, optionally narrowed by type, capped at limit.
	Search(ctx context.Context, countryCode, term, divisionType string, limit int) ([]*domain.AdministrativeDivision, error)

	// Create inserts a division, enforcing the forest invariants: the parent
	// must exist in the same country and the child's level must be exactly
	// parent level + 1 (roots are level 1).
	Create(ctx context.Context, division *domain.AdministrativeDivision) error
}
