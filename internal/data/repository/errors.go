package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is matched by every DuplicateError.
var ErrDuplicate = errors.New("duplicate record")

// DuplicateError reports a unique constraint violation.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate record: %s", e.Constraint)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// Unique constraint names as generated by PostgreSQL for the init migration.
const (
	ConstraintUsername         = "users_username_key"
	ConstraintEmail            = "users_email_key"
	ConstraintMovieDescription = "movies_description_key"
	ConstraintRatingUserMovie  = "ratings_user_id_movie_id_key"
)

// asDuplicate converts a unique_violation into a *DuplicateError and
// returns nil for anything else.
func asDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &DuplicateError{Constraint: pgErr.ConstraintName}
	}
	return nil
}

// DuplicateConstraint returns the violated constraint name, if err is a
// DuplicateError.
func DuplicateConstraint(err error) (string, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup.Constraint, true
	}
	return "", false
}
