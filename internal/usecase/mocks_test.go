package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	args := m.Called(ctx, limit, offset)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovieRepository) FindByTitle(ctx context.Context, title string, limit, offset int) ([]*entity.Movie, error) {
	args := m.Called(ctx, title, limit, offset)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieRepository) CountByTitle(ctx context.Context, title string) (int64, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovieRepository) FindByDescription(ctx context.Context, description string) (*entity.Movie, error) {
	args := m.Called(ctx, description)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *MockMovieRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	args := m.Called(ctx, userID)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Rating, error) {
	args := m.Called(ctx, userID, movieID)
	rating, _ := args.Get(0).(*entity.Rating)
	return rating, args.Error(1)
}

func (m *MockRatingRepository) GetMovieStats(ctx context.Context, movieID int64) (int64, int64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*entity.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentRepository) FindByMovieID(ctx context.Context, movieID int64, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(ctx, movieID, limit, offset)
	comments, _ := args.Get(0).([]*entity.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentRepository) CountByMovieID(ctx context.Context, movieID int64) (int64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) FindReplies(ctx context.Context, parentID int64, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(ctx, parentID, limit, offset)
	comments, _ := args.Get(0).([]*entity.Comment)
	return comments, args.Error(1)
}

func (m *MockCommentRepository) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}

type mockRepos struct {
	user    *MockUserRepository
	movie   *MockMovieRepository
	rating  *MockRatingRepository
	comment *MockCommentRepository
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		user:    new(MockUserRepository),
		movie:   new(MockMovieRepository),
		rating:  new(MockRatingRepository),
		comment: new(MockCommentRepository),
	}
	return &repository.Repository{
		User:    m.user,
		Movie:   m.movie,
		Rating:  m.rating,
		Comment: m.comment,
	}, m
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}
