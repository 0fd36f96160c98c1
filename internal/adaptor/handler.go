package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Movie   *MovieHandler
	Rating  *RatingHandler
	Comment *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Rating:  NewRatingHandler(service.Rating, log),
		Comment: NewCommentHandler(service.Comment, log),
	}
}

// conflictWriter renders ErrConflict; movies answer 406, everything else 400.
type conflictWriter func(w http.ResponseWriter, message string)

func conflictBadRequest(w http.ResponseWriter, message string) {
	utils.ResponseBadRequest(w, message, nil)
}

// writeServiceError maps usecase error kinds onto HTTP responses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, conflict conflictWriter) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		log.Warn(operation+" validation failed", zap.Any("errors", verr.Fields))
		utils.ResponseBadRequest(w, usecase.MsgValidationFailed, verr.Fields)
		return
	}

	msg := usecase.Message(err, "")

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, msg)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, msg)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		conflict(w, msg)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, msg)

	case errors.Is(err, usecase.ErrInvalidArgument):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, msg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads offset and limit query parameters.
func parsePagination(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Offset: utils.ParseInt(query.Get("offset"), 0, 0),
		Limit:  utils.ParseInt(query.Get("limit"), utils.DefaultLimit, 1),
	}
}
