package entity

import (
	"time"
)

// Movie is owned by the user who listed it; only the owner may change it.
type Movie struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	UpdatedAt   time.Time `db:"updated_at"`
	UserID      int64     `db:"user_id"`
}
