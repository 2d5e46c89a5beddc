package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/dto"
	"github.com/skillboard/skillboard-api/internal/errors"
	"github.com/skillboard/skillboard-api/internal/services"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUsernameTaken):
			errors.Conflict(c, "Username already exists")
		case stderrors.Is(err, services.ErrUsernameRequired),
			stderrors.Is(err, services.ErrPasswordTooShort):
			errors.BadRequest(c, err.Error())
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			errors.RespondWithError(c, http.StatusUnauthorized,
				errors.NewAPIError(errors.ErrCodeInvalidCredentials, "Invalid username or password"))
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(user, token))
}
