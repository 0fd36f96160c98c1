package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)

	// CurrentUser resolves a bearer token to the stored user.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Signup validation failed", zap.Error(err))
		return nil, err
	}

	// email is checked before username
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, newError(ErrConflict, MsgEmailExists)
	}

	existing, err = s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, newError(ErrConflict, MsgUsernameExists)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if constraint, ok := repository.DuplicateConstraint(err); ok {
			if constraint == repository.ConstraintEmail {
				return nil, newError(ErrConflict, MsgEmailExists)
			}
			return nil, newError(ErrConflict, MsgUsernameExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User has been created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user, nil)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown user", zap.String("username", req.Username))
		return nil, newError(ErrNotFound, MsgInvalidCredentials)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Incorrect password", zap.String("username", req.Username))
		return nil, newError(ErrUnauthorized, MsgIncorrectPassword)
	}

	accessToken, err := s.tokens.Issue(user.Username)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in successfully", zap.String("username", user.Username))

	return &response.TokenResponse{
		AccessToken: accessToken,
		TokenType:   response.TokenTypeBearer,
	}, nil
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Debug("Token rejected", zap.Error(err))
		return nil, newError(ErrUnauthorized, MsgInvalidToken)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, newError(ErrNotFound, MsgUserNotFound)
	}

	return user, nil
}
