package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type CommentService interface {
	CreateComment(ctx context.Context, user *entity.User, movieID int64, req *request.CommentRequest) (*response.CommentResponse, error)
	GetMovieComments(ctx context.Context, movieID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)

	// ReplyComment attaches a reply to parentID on the parent's movie.
	ReplyComment(ctx context.Context, user *entity.User, parentID int64, req *request.CommentRequest) (*response.CommentResponse, error)
	GetReplies(ctx context.Context, parentID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) CreateComment(ctx context.Context, user *entity.User, movieID int64, req *request.CommentRequest) (*response.CommentResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, newError(ErrNotFound, MsgMovieNotFound)
	}

	comment := &entity.Comment{
		UserID:  user.ID,
		MovieID: movieID,
		Content: req.Content,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("User successfully commented on movie",
		zap.String("username", user.Username),
		zap.Int64("movie_id", movieID),
		zap.Int64("comment_id", comment.ID),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

// GetMovieComments lists top-level comments and replies together. An unknown
// movie yields an empty page.
func (s *commentService) GetMovieComments(ctx context.Context, movieID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	limit := req.GetLimit()
	offset := req.GetOffset()

	comments, err := s.repo.Comment.FindByMovieID(ctx, movieID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	total, err := s.repo.Comment.CountByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	return response.NewPaginatedResponse(response.CommentsToResponse(comments), offset, limit, total), nil
}

func (s *commentService) ReplyComment(ctx context.Context, user *entity.User, parentID int64, req *request.CommentRequest) (*response.CommentResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	parent, err := s.findComment(ctx, parentID)
	if err != nil {
		return nil, err
	}

	reply := &entity.Comment{
		UserID:   user.ID,
		MovieID:  parent.MovieID,
		Content:  req.Content,
		ParentID: &parent.ID,
	}

	if err := s.repo.Comment.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}

	s.log.Info("User replied to comment",
		zap.String("username", user.Username),
		zap.Int64("parent_id", parentID),
		zap.Int64("comment_id", reply.ID),
	)

	resp := response.CommentToResponse(reply)
	return &resp, nil
}

func (s *commentService) GetReplies(ctx context.Context, parentID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	if _, err := s.findComment(ctx, parentID); err != nil {
		return nil, err
	}

	limit := req.GetLimit()
	offset := req.GetOffset()

	replies, err := s.repo.Comment.FindReplies(ctx, parentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get replies: %w", err)
	}

	total, err := s.repo.Comment.CountReplies(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("count replies: %w", err)
	}

	return response.NewPaginatedResponse(response.CommentsToResponse(replies), offset, limit, total), nil
}

func (s *commentService) findComment(ctx context.Context, id int64) (*entity.Comment, error) {
	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return nil, newError(ErrNotFound, MsgCommentNotFound)
	}
	return comment, nil
}
