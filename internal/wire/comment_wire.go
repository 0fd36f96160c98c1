package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler, auth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/{id}/comments", commentHandler.GetComments)
	r.Get("/comments/{id}/replies", commentHandler.GetReplies)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/{id}/comment", commentHandler.CreateComment)

		// {id} is the parent comment
		r.Post("/{id}/reply", commentHandler.ReplyComment)
	})
}
