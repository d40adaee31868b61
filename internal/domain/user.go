package domain

import "time"

// User is an account row. PasswordHash never leaves the process: the JSON
// tag strips it from every response shape.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserFavorite links a user to a service. Unique on (user_id, service_id);
// rows cascade away with either parent.
type UserFavorite struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ServiceID int64     `json:"service_id" db:"service_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
