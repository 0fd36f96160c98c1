package response

import (
	"movie-catalog/internal/data/entity"
)

const TokenTypeBearer = "bearer"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Movies   []MovieResponse `json:"movies"`
}

// Helper converters
func UserToResponse(user *entity.User, movies []*entity.Movie) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Movies:   MoviesToResponse(movies),
	}
}
