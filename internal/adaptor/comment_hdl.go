package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /movie/{id}/comment
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	var req request.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), user, movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "Comment created successfully", comment)
}

// GetComments handles GET /movie/{id}/comments
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	comments, err := h.service.GetMovieComments(r.Context(), movieID, parsePagination(r))
	if err != nil {
		h.handleServiceError(w, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved successfully", comments)
}

// ReplyComment handles POST /movie/{id}/reply where {id} is the parent comment.
func (h *CommentHandler) ReplyComment(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}

	var req request.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reply, err := h.service.ReplyComment(r.Context(), user, commentID, &req)
	if err != nil {
		h.handleServiceError(w, err, "reply comment")
		return
	}

	utils.ResponseSuccess(w, "Reply created successfully", reply)
}

// GetReplies handles GET /movie/comments/{id}/replies
func (h *CommentHandler) GetReplies(w http.ResponseWriter, r *http.Request) {
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}

	replies, err := h.service.GetReplies(r.Context(), commentID, parsePagination(r))
	if err != nil {
		h.handleServiceError(w, err, "get replies")
		return
	}

	utils.ResponseSuccess(w, "Replies retrieved successfully", replies)
}

func (h *CommentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation, conflictBadRequest)
}

func commentIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid comment ID", nil)
	}
	return id, ok
}
