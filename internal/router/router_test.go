package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipegenie/backend/internal/api"
	"github.com/recipegenie/backend/internal/mocks"
	"github.com/recipegenie/backend/internal/service"
	"github.com/recipegenie/backend/pkg/logger"
)

func TestLivenessRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(&mocks.MockUserStore{}, "test-secret")
	recipes := service.NewRecipeService(&mocks.MockTextGenerator{}, &mocks.MockRecipeStore{}, service.NewImageService(), logger.NewNop())

	router := SetupRouter(
		api.NewAuthHandler(auth, logger.NewNop()),
		api.NewRecipeHandler(recipes, auth, logger.NewNop()),
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recipe Genie API is running", w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(&mocks.MockUserStore{}, "test-secret")
	recipes := service.NewRecipeService(&mocks.MockTextGenerator{}, &mocks.MockRecipeStore{}, service.NewImageService(), logger.NewNop())

	router := SetupRouter(
		api.NewAuthHandler(auth, logger.NewNop()),
		api.NewRecipeHandler(recipes, auth, logger.NewNop()),
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
