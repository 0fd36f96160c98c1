package middleware

import (
	"errors"
	"net/http"
	"strings"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Auth resolves the bearer token to a user and stores it in the request
// context. Requests without a valid token never reach next.
func Auth(authService usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			user, err := authService.CurrentUser(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, usecase.ErrUnauthorized):
					utils.ResponseUnauthorized(w, usecase.Message(err, usecase.MsgInvalidToken))
				case errors.Is(err, usecase.ErrNotFound):
					logger.Warn("Token for unknown user", zap.String("path", r.URL.Path))
					utils.ResponseNotFound(w, usecase.Message(err, usecase.MsgUserNotFound))
				default:
					logger.Error("Failed to resolve current user", zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
				}
				return
			}

			ctx := utils.SetUserContext(r.Context(), user)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
