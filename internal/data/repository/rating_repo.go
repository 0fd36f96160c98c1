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

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Rating, error)

	// GetMovieStats returns the sum and number of ratings for a movie.
	GetMovieStats(ctx context.Context, movieID int64) (int64, int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (user_id, movie_id, rating)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		rating.UserID,
		rating.MovieID,
		rating.Rating,
	).Scan(&rating.ID, &rating.CreatedAt)

	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.Int64("user_id", rating.UserID),
			zap.Int64("movie_id", rating.MovieID),
		)
		return fmt.Errorf("create rating for movie %d by user %d: %w",
			rating.MovieID, rating.UserID, err)
	}

	return nil
}

func (r *ratingRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, movie_id, rating, created_at
		FROM ratings
		WHERE user_id = $1 AND movie_id = $2
		LIMIT 1
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.MovieID,
		&rating.Rating,
		&rating.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by user and movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find rating by user %d and movie %d: %w", userID, movieID, err)
	}

	return &rating, nil
}

func (r *ratingRepository) GetMovieStats(ctx context.Context, movieID int64) (int64, int64, error) {
	query := `
		SELECT
			COALESCE(SUM(rating), 0) AS rating_sum,
			COUNT(*) AS rating_count
		FROM ratings
		WHERE movie_id = $1
	`

	var sum, count int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&sum, &count)
	if err != nil {
		r.log.Error("Failed to get movie rating stats",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, 0, fmt.Errorf("get rating stats for movie %d: %w", movieID, err)
	}

	return sum, count, nil
}
