package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)

	// Lookups
	FindByTitle(ctx context.Context, title string, limit, offset int) ([]*entity.Movie, error)
	CountByTitle(ctx context.Context, title string) (int64, error)
	FindByDescription(ctx context.Context, description string) (*entity.Movie, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, description, release_date, updated_at, user_id`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.UpdatedAt,
		&movie.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) collect(rows pgx.Rows) ([]*entity.Movie, error) {
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, release_date, updated_at, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.UpdatedAt,
		movie.UserID,
	).Scan(&movie.ID)

	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return movie, nil
}

func (r *movieRepository) FindByDescription(ctx context.Context, description string) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE description = $1 LIMIT 1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, description))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by description", zap.Error(err))
		return nil, fmt.Errorf("find movie by description: %w", err)
	}

	return movie, nil
}

// FindAll pages through movies in insertion order.
func (r *movieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all movies limit %d offset %d: %w", limit, offset, err)
	}

	return r.collect(rows)
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return count, nil
}

// FindByTitle matches the title exactly.
func (r *movieRepository) FindByTitle(ctx context.Context, title string, limit, offset int) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE title = $1 ORDER BY id LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, title, limit, offset)
	if err != nil {
		r.log.Error("Failed to find movies by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movies by title %q: %w", title, err)
	}

	return r.collect(rows)
}

func (r *movieRepository) CountByTitle(ctx context.Context, title string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies WHERE title = $1`, title).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count movies by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return 0, fmt.Errorf("count movies by title %q: %w", title, err)
	}

	return count, nil
}

func (r *movieRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find movies by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find movies by user ID %d: %w", userID, err)
	}

	return r.collect(rows)
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.UpdatedAt,
	)

	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", movie.ID)
	}

	return nil
}

// Delete removes the movie; its ratings and comments go with it.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d not found", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
