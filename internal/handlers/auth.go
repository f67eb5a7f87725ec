package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/family-task-api/internal/dto"
	apierrors "github.com/yukikurage/family-task-api/internal/errors"
	"github.com/yukikurage/family-task-api/internal/services"
)

// AuthHandler coordinates signup and login.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user into a new or existing workspace.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Username      string `json:"username" binding:"required"`
		Email         string `json:"email" binding:"required"`
		Password      string `json:"password" binding:"required"`
		WorkspaceCode string `json:"workspace_code"`
		Passcode      string `json:"passcode"`
		Role          string `json:"role"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		WorkspaceCode: req.WorkspaceCode,
		Passcode:      req.Passcode,
		Role:          req.Role,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSignupResponse(*result))
}

// Login checks credentials and returns the user's workspace binding.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrPasswordRequired),
		errors.Is(err, services.ErrPasswordTooLong),
		errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAccountExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidPasscode):
		apierrors.InvalidPasscode(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "Internal server error")
	}
}
