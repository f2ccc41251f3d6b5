package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipegenie/backend/internal/api"
	"github.com/recipegenie/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(authHandler *api.AuthHandler, recipeHandler *api.RecipeHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	// Liveness route
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Recipe Genie API is running")
	})

	root := router.Group("/api")
	authHandler.RegisterRoutes(root)
	recipeHandler.RegisterRoutes(root)

	return router
}
