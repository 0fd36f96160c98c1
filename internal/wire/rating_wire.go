package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler, auth func(http.Handler) http.Handler) {
	r.Get("/{id}/ratings", ratingHandler.GetRatings)
	r.With(auth).Post("/{id}/rate", ratingHandler.RateMovie)
}
