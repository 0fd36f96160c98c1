package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// RateMovie handles POST /movie/{id}/rate
func (h *RatingHandler) RateMovie(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	average, err := h.service.RateMovie(r.Context(), user, movieID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "rate movie", conflictBadRequest)
		return
	}

	utils.ResponseCreated(w, "Movie rated successfully", average)
}

// GetRatings handles GET /movie/{id}/ratings
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	average, err := h.service.GetAverage(r.Context(), movieID)
	if err != nil {
		writeServiceError(w, h.log, err, "get ratings", conflictBadRequest)
		return
	}

	utils.ResponseSuccess(w, "Ratings retrieved successfully", average)
}
