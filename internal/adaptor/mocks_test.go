package adaptor

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.UserResponse)
	return resp, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.TokenResponse)
	return resp, args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, user *entity.User) (*response.UserResponse, error) {
	args := m.Called(ctx, user)
	resp, _ := args.Get(0).(*response.UserResponse)
	return resp, args.Error(1)
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.MovieResponse])
	return resp, args.Error(1)
}

func (m *MockMovieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID)
	resp, _ := args.Get(0).(*response.MovieResponse)
	return resp, args.Error(1)
}

func (m *MockMovieService) SearchMovies(ctx context.Context, title string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	args := m.Called(ctx, title, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.MovieResponse])
	return resp, args.Error(1)
}

func (m *MockMovieService) CreateMovie(ctx context.Context, user *entity.User, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, user, req)
	resp, _ := args.Get(0).(*response.MovieResponse)
	return resp, args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, movieID int64, user *entity.User, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID, user, req)
	resp, _ := args.Get(0).(*response.MovieResponse)
	return resp, args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, movieID int64, user *entity.User) error {
	args := m.Called(ctx, movieID, user)
	return args.Error(0)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RateMovie(ctx context.Context, user *entity.User, movieID int64, req *request.RatingRequest) (string, error) {
	args := m.Called(ctx, user, movieID, req)
	return args.String(0), args.Error(1)
}

func (m *MockRatingService) GetAverage(ctx context.Context, movieID int64) (string, error) {
	args := m.Called(ctx, movieID)
	return args.String(0), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, user *entity.User, movieID int64, req *request.CommentRequest) (*response.CommentResponse, error) {
	args := m.Called(ctx, user, movieID, req)
	resp, _ := args.Get(0).(*response.CommentResponse)
	return resp, args.Error(1)
}

func (m *MockCommentService) GetMovieComments(ctx context.Context, movieID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	args := m.Called(ctx, movieID, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.CommentResponse])
	return resp, args.Error(1)
}

func (m *MockCommentService) ReplyComment(ctx context.Context, user *entity.User, parentID int64, req *request.CommentRequest) (*response.CommentResponse, error) {
	args := m.Called(ctx, user, parentID, req)
	resp, _ := args.Get(0).(*response.CommentResponse)
	return resp, args.Error(1)
}

func (m *MockCommentService) GetReplies(ctx context.Context, parentID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	args := m.Called(ctx, parentID, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.CommentResponse])
	return resp, args.Error(1)
}
