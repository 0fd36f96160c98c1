package entity

const (
	MinRating = 1
	MaxRating = 9
)

type Rating struct {
	BaseSimple
	UserID  int64 `db:"user_id"`
	MovieID int64 `db:"movie_id"`
	Rating  int   `db:"rating"`
}

// ValidRating reports whether value is an accepted score.
func ValidRating(value int) bool {
	return value >= MinRating && value <= MaxRating
}
