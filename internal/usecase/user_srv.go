package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	// GetProfile returns the user together with the movies they listed.
	GetProfile(ctx context.Context, user *entity.User) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, user *entity.User) (*response.UserResponse, error) {
	movies, err := us.repo.Movie.FindByUserID(ctx, user.ID)
	if err != nil {
		us.log.Error("Failed to get user movies", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("get movies of user %d: %w", user.ID, err)
	}

	resp := response.UserToResponse(user, movies)
	return &resp, nil
}
