package dto

import (
	"time"

	"github.com/skillboard/skillboard-api/internal/constants"
	"github.com/skillboard/skillboard-api/internal/models"
)

// RegisterRequest represents the registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the login answer: a signed bearer token.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ToUserResponse converts a User model to a UserResponse.
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// ToTokenResponse wraps a signed token with its type and the authenticated
// user.
func ToTokenResponse(user *models.User, token string) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   constants.BearerTokenType,
		User:        ToUserResponse(user),
	}
}
