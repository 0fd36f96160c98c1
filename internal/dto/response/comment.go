package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	MovieID   int64     `json:"movie_id"`
	ParentID  *int64    `json:"parent_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		MovieID:   comment.MovieID,
		ParentID:  comment.ParentID,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
	}
}

func CommentsToResponse(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, CommentToResponse(comment))
	}
	return out
}
