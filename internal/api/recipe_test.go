package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/recipegenie/backend/internal/mocks"
	"github.com/recipegenie/backend/internal/models"
	"github.com/recipegenie/backend/internal/service"
	"github.com/recipegenie/backend/pkg/logger"
)

const recipeBatch = `[
	{"title":"Tomato Soup","description":"d","ingredients":["2 tomatoes"],"instructions":["simmer"],"prepTime":5,"cookTime":25},
	{"title":"Bruschetta","description":"d","ingredients":["1 baguette"],"instructions":["toast"],"prepTime":10,"cookTime":5}
]`

type recipeTestEnv struct {
	router *gin.Engine
	ai     *mocks.MockTextGenerator
	store  *mocks.MockRecipeStore
	auth   *service.AuthService
	users  *mocks.MockUserStore
}

func setupRecipeEnv(t *testing.T, aiResponse string) *recipeTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ai := &mocks.MockTextGenerator{Response: aiResponse}
	store := &mocks.MockRecipeStore{}
	users := &mocks.MockUserStore{}
	auth := service.NewAuthService(users, "test-secret")
	recipes := service.NewRecipeService(ai, store, service.NewImageService(), logger.NewNop())

	router := gin.New()
	handler := NewRecipeHandler(recipes, auth, logger.NewNop())
	handler.RegisterRoutes(router.Group("/api"))

	return &recipeTestEnv{router: router, ai: ai, store: store, auth: auth, users: users}
}

func (e *recipeTestEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestGenerateReturnsPersistedRecipes(t *testing.T) {
	env := setupRecipeEnv(t, recipeBatch)

	w := env.do(http.MethodPost, "/api/recipes/generate", `{"ingredients":["tomatoes","bread"],"servings":4}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool            `json:"success"`
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Recipes, 2)

	assert.Equal(t, "Tomato Soup", resp.Recipes[0].Title)
	assert.Equal(t, "Bruschetta", resp.Recipes[1].Title)
	for _, r := range resp.Recipes {
		assert.NotEqual(t, primitive.NilObjectID, r.ID, "response carries storage-assigned ids")
		assert.Equal(t, 4, r.Servings)
	}
	assert.Equal(t, 1, env.ai.Calls)
	assert.Equal(t, 1, env.store.InsertCalls)
}

func TestGenerateEmptyAIBatch(t *testing.T) {
	env := setupRecipeEnv(t, "[]")

	w := env.do(http.MethodPost, "/api/recipes/generate", `{"ingredients":["tomatoes"]}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool            `json:"success"`
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Recipes)
	assert.Empty(t, resp.Recipes)
}

func TestGenerateEmptyIngredients(t *testing.T) {
	env := setupRecipeEnv(t, recipeBatch)

	for _, body := range []string{`{"ingredients":[]}`, `{}`} {
		w := env.do(http.MethodPost, "/api/recipes/generate", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please provide at least one ingredient")
	}

	assert.Zero(t, env.ai.Calls, "no AI call on validation failure")
	assert.Zero(t, env.store.InsertCalls, "no persistence on validation failure")
}

func TestGenerateMalformedAIOutput(t *testing.T) {
	env := setupRecipeEnv(t, "not json")

	w := env.do(http.MethodPost, "/api/recipes/generate", `{"ingredients":["tomatoes"]}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate recipes")
	assert.Zero(t, env.store.InsertCalls, "no partial persistence")
}

func TestGenerateStorageValidationFailure(t *testing.T) {
	// Description missing: fails schema constraints at persistence time
	env := setupRecipeEnv(t, `[{"title":"Nameless","ingredients":["x"],"instructions":["y"],"prepTime":1,"cookTime":1}]`)

	w := env.do(http.MethodPost, "/api/recipes/generate", `{"ingredients":["x"]}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var resp struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Recipe validation failed", resp.Message)
	assert.Contains(t, resp.Errors, "description: Please add a description")
}

func TestListReturnsNewestFirst(t *testing.T) {
	env := setupRecipeEnv(t, recipeBatch)
	now := time.Now().UTC()
	env.store.Recipes = []*models.Recipe{
		{ID: primitive.NewObjectID(), Title: "Newest", CreatedAt: now},
		{ID: primitive.NewObjectID(), Title: "Middle", CreatedAt: now.Add(-time.Hour)},
		{ID: primitive.NewObjectID(), Title: "Oldest", CreatedAt: now.Add(-2 * time.Hour)},
	}

	w := env.do(http.MethodGet, "/api/recipes", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 3)
	for i := 1; i < len(resp.Recipes); i++ {
		assert.False(t, resp.Recipes[i].CreatedAt.After(resp.Recipes[i-1].CreatedAt),
			"createdAt must be non-increasing")
	}
}

func TestGetByID(t *testing.T) {
	env := setupRecipeEnv(t, recipeBatch)
	recipe := &models.Recipe{ID: primitive.NewObjectID(), Title: "Tomato Soup"}
	env.store.Recipes = []*models.Recipe{recipe}

	w := env.do(http.MethodGet, "/api/recipes/"+recipe.ID.Hex(), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tomato Soup")

	// Unknown identifiers return 404, never 500
	w = env.do(http.MethodGet, "/api/recipes/"+primitive.NewObjectID().Hex(), "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Recipe not found")

	w = env.do(http.MethodGet, "/api/recipes/not-a-hex-id", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateRequiresAuth(t *testing.T) {
	env := setupRecipeEnv(t, recipeBatch)
	recipe := &models.Recipe{ID: primitive.NewObjectID(), Title: "Tomato Soup"}
	env.store.Recipes = []*models.Recipe{recipe}

	w := env.do(http.MethodPost, "/api/recipes/"+recipe.ID.Hex()+"/ratings", `{"value":5}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateUpdatesAverage(t *testing.T) {
	env := setupRecipeEnv(t, recipeBatch)
	recipe := &models.Recipe{ID: primitive.NewObjectID(), Title: "Tomato Soup"}
	env.store.Recipes = []*models.Recipe{recipe}

	token, _, err := env.auth.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	w := env.do(http.MethodPost, "/api/recipes/"+recipe.ID.Hex()+"/ratings", `{"value":4,"comment":"great"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Recipe models.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4.0, resp.Recipe.AverageRating)
	require.Len(t, resp.Recipe.Ratings, 1)
	assert.Equal(t, "great", resp.Recipe.Ratings[0].Comment)

	// Out-of-range values are rejected before any mutation
	w = env.do(http.MethodPost, "/api/recipes/"+recipe.ID.Hex()+"/ratings", `{"value":9}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
