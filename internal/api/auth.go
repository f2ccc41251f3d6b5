package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/middleware"
	"github.com/recipegenie/backend/internal/models"
	"github.com/recipegenie/backend/internal/service"
	"github.com/recipegenie/backend/internal/types"
	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// AuthHandler handles registration, login and identity requests
type AuthHandler struct {
	auth   service.IAuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth service.IAuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.AuthMiddleware(h.auth, h.auth, h.logger), h.Me)
	}
}

// Register creates a user and issues a bearer credential
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInputValidationError("Invalid request body").WithCause(err), "")
		return
	}

	token, user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, service.ErrUserExists) {
		respondError(c, h.logger, apperrors.NewInputValidationError("User already exists"), "")
		return
	}
	if err != nil {
		respondError(c, h.logger, err, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

// Login verifies the credential and issues a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInputValidationError("Invalid request body").WithCause(err), "")
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(c, h.logger, apperrors.NewUnauthorizedError("Invalid credentials"), "")
		return
	}
	if err != nil {
		respondError(c, h.logger, err, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// Me returns the identity resolved from the bearer credential
func (h *AuthHandler) Me(c *gin.Context) {
	userVal, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		respondError(c, h.logger, apperrors.NewUnauthorizedError(""), "")
		return
	}

	user, ok := userVal.(*models.User)
	if !ok {
		respondError(c, h.logger, apperrors.NewUnauthorizedError(""), "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
