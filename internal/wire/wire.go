package wire

import (
	"context"
	"net/http"
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes
func Wiring(repo *repository.Repository, db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, db, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	db database.PgxIface,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	auth := middleware.Auth(service.Auth, logger)

	// Apply routes
	r.Route("/user", func(r chi.Router) {
		wireAuth(r, handler.Auth)
		wireUser(r, handler.User, auth)
	})

	r.Route("/movie", func(r chi.Router) {
		wireMovie(r, handler.Movie, auth)
		wireRating(r, handler.Rating, auth)
		wireComment(r, handler.Comment, auth)
	})

	r.Get("/health", healthCheck(db, logger))

	return r
}

// healthCheck reports 503 when the database does not answer a ping.
func healthCheck(db database.PgxIface, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseServiceUnavailable(w, "Database unavailable")
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
