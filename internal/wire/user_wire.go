package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth func(http.Handler) http.Handler) {
	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Get("/me", userHandler.GetProfile)
}
