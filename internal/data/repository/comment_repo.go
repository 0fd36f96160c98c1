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

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// FindByMovieID returns top-level comments and replies alike.
	FindByMovieID(ctx context.Context, movieID int64, limit, offset int) ([]*entity.Comment, error)
	CountByMovieID(ctx context.Context, movieID int64) (int64, error)

	FindReplies(ctx context.Context, parentID int64, limit, offset int) ([]*entity.Comment, error)
	CountReplies(ctx context.Context, parentID int64) (int64, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

const commentColumns = `id, user_id, movie_id, content, parent_id, created_at`

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var comment entity.Comment
	err := row.Scan(
		&comment.ID,
		&comment.UserID,
		&comment.MovieID,
		&comment.Content,
		&comment.ParentID,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) collect(rows pgx.Rows) ([]*entity.Comment, error) {
	defer rows.Close()

	comments := []*entity.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (user_id, movie_id, content, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.UserID,
		comment.MovieID,
		comment.Content,
		comment.ParentID,
	).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("user_id", comment.UserID),
			zap.Int64("movie_id", comment.MovieID),
		)
		return fmt.Errorf("create comment on movie %d: %w", comment.MovieID, err)
	}

	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment by ID",
			zap.Error(err),
			zap.Int64("comment_id", id),
		)
		return nil, fmt.Errorf("find comment by ID %d: %w", id, err)
	}

	return comment, nil
}

func (r *commentRepository) FindByMovieID(ctx context.Context, movieID int64, limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE movie_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, movieID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find comments by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find comments by movie ID %d: %w", movieID, err)
	}

	return r.collect(rows)
}

func (r *commentRepository) CountByMovieID(ctx context.Context, movieID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE movie_id = $1`, movieID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count comments by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, fmt.Errorf("count comments by movie ID %d: %w", movieID, err)
	}

	return count, nil
}

func (r *commentRepository) FindReplies(ctx context.Context, parentID int64, limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, parentID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find replies",
			zap.Error(err),
			zap.Int64("parent_id", parentID),
		)
		return nil, fmt.Errorf("find replies to comment %d: %w", parentID, err)
	}

	return r.collect(rows)
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE parent_id = $1`, parentID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count replies",
			zap.Error(err),
			zap.Int64("parent_id", parentID),
		)
		return 0, fmt.Errorf("count replies to comment %d: %w", parentID, err)
	}

	return count, nil
}
