package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var movieCols = []string{"id", "title", "description", "release_date", "updated_at", "user_id"}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	user := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: ConstraintUsername})

	err := repo.Create(context.Background(), &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)

	constraint, ok := DuplicateConstraint(err)
	assert.True(t, ok)
	assert.Equal(t, ConstraintUsername, constraint)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "hashed_password", "created_at"}).
			AddRow(int64(1), "alice", "alice@example.com", "hash", now))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByIDError(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(3)).
		WillReturnError(errors.New("connection reset"))

	user, err := repo.FindByID(context.Background(), 3)
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestMovieRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs("Heat", "A heist", now, now, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	movie := &entity.Movie{Title: "Heat", Description: "A heist", ReleaseDate: now, UpdatedAt: now, UserID: 1}
	require.NoError(t, repo.Create(context.Background(), movie))
	assert.Equal(t, int64(10), movie.ID)
}

func TestMovieRepository_CreateDuplicateDescription(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: ConstraintMovieDescription})

	err := repo.Create(context.Background(), &entity.Movie{Title: "Heat", Description: "A heist", UserID: 1})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMovieRepository_FindAll(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("FROM movies ORDER BY id LIMIT").
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows(movieCols).
			AddRow(int64(1), "Heat", "A heist", now, now, int64(1)).
			AddRow(int64(2), "Ronin", "A briefcase", now, now, int64(2)))

	movies, err := repo.FindAll(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Ronin", movies[1].Title)
}

func TestMovieRepository_FindAllEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM movies ORDER BY id LIMIT").
		WithArgs(10, 20).
		WillReturnRows(pgxmock.NewRows(movieCols))

	movies, err := repo.FindAll(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestMovieRepository_FindByTitle(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("FROM movies WHERE title").
		WithArgs("Heat", 10, 0).
		WillReturnRows(pgxmock.NewRows(movieCols).AddRow(int64(1), "Heat", "A heist", now, now, int64(1)))

	movies, err := repo.FindByTitle(context.Background(), "Heat", 10, 0)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestMovieRepository_CountAll(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := repo.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestMovieRepository_FindByDescriptionNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM movies WHERE description").
		WithArgs("nothing like it").
		WillReturnError(pgx.ErrNoRows)

	movie, err := repo.FindByDescription(context.Background(), "nothing like it")
	assert.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectExec("UPDATE movies").
		WithArgs(int64(1), "Heat", "Updated", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &entity.Movie{ID: 1, Title: "Heat", Description: "Updated", UpdatedAt: now})
	assert.NoError(t, err)
}

func TestMovieRepository_UpdateMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectExec("UPDATE movies").
		WithArgs(int64(9), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &entity.Movie{ID: 9})
	assert.Error(t, err)
}

func TestMovieRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectExec("DELETE FROM movies").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 1))
}

func TestRatingRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock, zap.NewNop())

	mock.ExpectQuery("INSERT INTO ratings").
		WithArgs(int64(1), int64(2), 5).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: ConstraintRatingUserMovie})

	err := repo.Create(context.Background(), &entity.Rating{UserID: 1, MovieID: 2, Rating: 5})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRatingRepository_CreateOtherError(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock, zap.NewNop())

	mock.ExpectQuery("INSERT INTO ratings").
		WithArgs(int64(1), int64(2), 5).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &entity.Rating{UserID: 1, MovieID: 2, Rating: 5})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestRatingRepository_FindByUserAndMovie(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("FROM ratings").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "movie_id", "rating", "created_at"}).
			AddRow(int64(5), int64(1), int64(2), 7, now))

	rating, err := repo.FindByUserAndMovie(context.Background(), 1, 2)
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 7, rating.Rating)
}

func TestRatingRepository_GetMovieStats(t *testing.T) {
	mock := newMock(t)
	repo := NewRatingRepository(mock, zap.NewNop())

	mock.ExpectQuery("SUM\\(rating\\)").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"rating_sum", "rating_count"}).AddRow(int64(13), int64(2)))

	sum, count, err := repo.GetMovieStats(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(13), sum)
	assert.Equal(t, int64(2), count)
}

func TestCommentRepository_CreateReply(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepository(mock, zap.NewNop())
	now := time.Now()
	parent := int64(4)

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(int64(1), int64(2), "agreed", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), now))

	comment := &entity.Comment{UserID: 1, MovieID: 2, Content: "agreed", ParentID: &parent}
	require.NoError(t, repo.Create(context.Background(), comment))
	assert.Equal(t, int64(8), comment.ID)
	assert.True(t, comment.IsReply())
}

func TestCommentRepository_FindByID(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepository(mock, zap.NewNop())
	now := time.Now()
	parent := int64(4)

	mock.ExpectQuery("FROM comments WHERE id").
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "movie_id", "content", "parent_id", "created_at"}).
			AddRow(int64(8), int64(1), int64(2), "agreed", &parent, now))

	comment, err := repo.FindByID(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, comment)
	require.NotNil(t, comment.ParentID)
	assert.Equal(t, int64(4), *comment.ParentID)
}

func TestCommentRepository_FindByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM comments WHERE id").
		WithArgs(int64(8)).
		WillReturnError(pgx.ErrNoRows)

	comment, err := repo.FindByID(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, comment)
}

func TestCommentRepository_FindReplies(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepository(mock, zap.NewNop())
	now := time.Now()
	parent := int64(4)

	mock.ExpectQuery("WHERE parent_id").
		WithArgs(int64(4), 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "movie_id", "content", "parent_id", "created_at"}).
			AddRow(int64(8), int64(1), int64(2), "agreed", &parent, now).
			AddRow(int64(9), int64(3), int64(2), "no", &parent, now))

	replies, err := repo.FindReplies(context.Background(), 4, 10, 0)
	require.NoError(t, err)
	assert.Len(t, replies, 2)
}

func TestCommentRepository_CountByMovieID(t *testing.T) {
	mock := newMock(t)
	repo := NewCommentRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountByMovieID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
