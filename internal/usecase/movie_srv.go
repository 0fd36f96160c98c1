package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	SearchMovies(ctx context.Context, title string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	CreateMovie(ctx context.Context, user *entity.User, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, user *entity.User, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64, user *entity.User) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.GetLimit()
	offset := req.GetOffset()

	movies, err := s.repo.Movie.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), offset, limit, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// SearchMovies returns movies whose title matches exactly.
func (s *movieService) SearchMovies(ctx context.Context, title string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.GetLimit()
	offset := req.GetOffset()

	movies, err := s.repo.Movie.FindByTitle(ctx, title, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, newError(ErrNotFound, MsgNoResults)
	}

	total, err := s.repo.Movie.CountByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("count movies by title: %w", err)
	}

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), offset, limit, total), nil
}

func (s *movieService) CreateMovie(ctx context.Context, user *entity.User, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("User is attempting to list a new movie",
		zap.String("username", user.Username),
		zap.String("title", req.Title),
	)

	existing, err := s.repo.Movie.FindByDescription(ctx, req.Description)
	if err != nil {
		return nil, fmt.Errorf("check description: %w", err)
	}
	if existing != nil {
		s.log.Warn("Similar movie already exists", zap.Int64("movie_id", existing.ID))
		return nil, newError(ErrConflict, MsgMovieExists)
	}

	now := s.now()
	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: now,
		UpdatedAt:   now,
		UserID:      user.ID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, MsgMovieExists)
		}
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie listed",
		zap.Int64("movie_id", movie.ID),
		zap.String("username", user.Username),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, user *entity.User, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return nil, err
	}

	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if movie.UserID != user.ID {
		s.log.Warn("User is not authorized to update movie",
			zap.String("username", user.Username),
			zap.Int64("movie_id", movieID),
		)
		return nil, newError(ErrForbidden, MsgMovieUpdateDenied)
	}

	// the movie may keep its own description
	existing, err := s.repo.Movie.FindByDescription(ctx, req.Description)
	if err != nil {
		return nil, fmt.Errorf("check description: %w", err)
	}
	if existing != nil && existing.ID != movie.ID {
		return nil, newError(ErrConflict, MsgMovieExists)
	}

	movie.Title = req.Title
	movie.Description = req.Description
	movie.UpdatedAt = s.now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, MsgMovieExists)
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movie.ID),
		zap.String("username", user.Username),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID int64, user *entity.User) error {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return err
	}

	if movie.UserID != user.ID {
		s.log.Warn("User is not authorized to delete movie",
			zap.String("username", user.Username),
			zap.Int64("movie_id", movieID),
		)
		return newError(ErrForbidden, MsgMovieDeleteDenied)
	}

	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", movieID),
		zap.String("username", user.Username),
	)
	return nil
}

func (s *movieService) findMovie(ctx context.Context, movieID int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, newError(ErrNotFound, MsgMovieNotFound)
	}
	return movie, nil
}
