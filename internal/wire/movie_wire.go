package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, auth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/", movieHandler.GetMovies)
	r.Get("/{id}", movieHandler.GetMovieByID)
	r.Get("/search/{title}", movieHandler.SearchMovies)

	// ==================== OWNER ROUTES ====================
	// Ownership is checked by the service
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/", movieHandler.CreateMovie)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
