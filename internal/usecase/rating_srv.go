package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"

	"go.uber.org/zap"
)

type RatingService interface {
	// RateMovie stores the user's score and returns the new average.
	RateMovie(ctx context.Context, user *entity.User, movieID int64, req *request.RatingRequest) (string, error)
	GetAverage(ctx context.Context, movieID int64) (string, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

// FormatAverage renders sum/count with one decimal place.
func FormatAverage(sum, count int64) string {
	return fmt.Sprintf("average_rating : %.1f", float64(sum)/float64(count))
}

func (s *ratingService) RateMovie(ctx context.Context, user *entity.User, movieID int64, req *request.RatingRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return "", fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return "", newError(ErrNotFound, MsgMovieNotFound)
	}

	existing, err := s.repo.Rating.FindByUserAndMovie(ctx, user.ID, movieID)
	if err != nil {
		return "", fmt.Errorf("check existing rating: %w", err)
	}
	if existing != nil {
		s.log.Warn("User has already rated movie",
			zap.String("username", user.Username),
			zap.Int64("movie_id", movieID),
		)
		return "", newError(ErrConflict, MsgAlreadyRated)
	}

	if !entity.ValidRating(*req.Rating) {
		return "", newError(ErrInvalidArgument, MsgRatingOutOfRange)
	}

	rating := &entity.Rating{
		UserID:  user.ID,
		MovieID: movieID,
		Rating:  *req.Rating,
	}

	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", newError(ErrConflict, MsgAlreadyRated)
		}
		return "", fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("User successfully rated movie",
		zap.String("username", user.Username),
		zap.Int64("movie_id", movieID),
		zap.Int("rating", rating.Rating),
	)

	return s.average(ctx, movieID)
}

func (s *ratingService) GetAverage(ctx context.Context, movieID int64) (string, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return "", fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return "", newError(ErrNotFound, MsgMovieNotFound)
	}

	return s.average(ctx, movieID)
}

func (s *ratingService) average(ctx context.Context, movieID int64) (string, error) {
	sum, count, err := s.repo.Rating.GetMovieStats(ctx, movieID)
	if err != nil {
		return "", fmt.Errorf("get rating stats: %w", err)
	}
	if count == 0 {
		return "", newError(ErrNotFound, MsgNoRatings)
	}

	return FormatAverage(sum, count), nil
}
