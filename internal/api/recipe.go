package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/middleware"
	"github.com/recipegenie/backend/internal/service"
	"github.com/recipegenie/backend/internal/types"
	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// RecipeHandler handles recipe-related requests
type RecipeHandler struct {
	recipes service.IRecipeService
	auth    service.IAuthService
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.IRecipeService, auth service.IAuthService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		auth:    auth,
		logger:  logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/generate", h.Generate)
		recipes.GET("", h.List)
		recipes.GET("/:id", h.GetByID)
		recipes.POST("/:id/ratings", middleware.AuthMiddleware(h.auth, h.auth, h.logger), h.Rate)
	}
}

// Generate validates the ingredient list, runs the generation pipeline and
// returns the persisted records.
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req types.GenerateRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInputValidationError("Invalid request body").WithCause(err), "")
		return
	}

	if len(req.Ingredients) == 0 {
		respondError(c, h.logger, apperrors.NewInputValidationError("Please provide at least one ingredient"), "")
		return
	}

	recipes, err := h.recipes.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate recipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipes": recipes})
}

// List returns all persisted recipes, newest first
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipes": recipes})
}

// GetByID returns one recipe by its storage identifier
func (h *RecipeHandler) GetByID(c *gin.Context) {
	recipe, err := h.recipes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipe": recipe})
}

// Rate appends the authenticated user's rating to a recipe
func (h *RecipeHandler) Rate(c *gin.Context) {
	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInputValidationError("Please provide a rating value between 1 and 5").WithCause(err), "")
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	recipe, err := h.recipes.Rate(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to rate recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipe": recipe})
}
