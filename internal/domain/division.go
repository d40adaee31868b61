package domain

import "time"

// AdministrativeDivision is a named region (province/district/ward-like)
// in a per-country hierarchy. parent_id forms a forest: roots have level 1
// and a child's level is always parent level + 1.
type AdministrativeDivision struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	Level       int       `json:"level" db:"level"`
	ParentID    *int64    `json:"parent_id,omitempty" db:"parent_id"`
	CountryCode string    `json:"country_code" db:"country_code"`
	Latitude    *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DivisionParentFilter expresses the trinary parent lookup: nil pointer to
// the filter means "all divisions", Root means "only roots (parent IS
// NULL)", otherwise only direct children of ID.
type DivisionParentFilter struct {
	Root bool
	ID   int64
}

// RootDivisions filters to divisions without a parent.
func RootDivisions() *DivisionParentFilter {
	return &DivisionParentFilter{Root: true}
}

// ChildrenOf filters to direct children of the given division.
func ChildrenOf(id int64) *DivisionParentFilter {
	return &DivisionParentFilter{ID: id}
}
