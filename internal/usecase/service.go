package usecase

import (
	"time"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// TokenIssuer signs and verifies access tokens whose subject is a username.
type TokenIssuer interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}

type Service struct {
	Auth    AuthService
	User    UserService
	Movie   MovieService
	Rating  RatingService
	Comment CommentService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	issuer := token.NewIssuer(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryMinutes)*time.Minute,
		config.JWT.Issuer,
	)

	return &Service{
		Auth:    NewAuthService(repo.User, issuer, log),
		User:    NewUserService(repo, log),
		Movie:   NewMovieService(repo, log),
		Rating:  NewRatingService(repo, log),
		Comment: NewCommentService(repo, log),
	}
}
