package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/recipegenie/backend/internal/models"
	"github.com/recipegenie/backend/internal/types"
)

// RecipeService runs the generation pipeline and exposes recipe reads
type RecipeService struct {
	ai         TextGenerator
	store      IRecipeStore
	normalizer *Normalizer
	logger     *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(ai TextGenerator, store IRecipeStore, images ImageResolver, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		ai:         ai,
		store:      store,
		normalizer: NewNormalizer(images),
		logger:     logger,
	}
}

// Generate runs the full pipeline: prompt construction, model call,
// normalization, image resolution and bulk persistence. The returned records
// carry the storage-assigned identifiers, never generation-time ones.
func (s *RecipeService) Generate(ctx context.Context, req types.GenerateRecipesRequest) ([]*models.Recipe, error) {
	prompt := buildPrompt(req)

	s.logger.Info("calling Gemini API", zap.Strings("ingredients", req.Ingredients))
	raw, err := s.ai.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	recipes, err := s.normalizer.Normalize(raw, NormalizeDefaults{
		Servings: req.Servings,
		Cuisine:  req.Cuisine,
	})
	if err != nil {
		return nil, err
	}

	// Correlation id for this generation, valid only until the store assigns
	// document identity.
	generationID := "generated-" + uuid.NewString()
	for _, recipe := range recipes {
		s.logger.Debug("normalized recipe",
			zap.String("generation_id", generationID),
			zap.String("title", recipe.Title))
	}

	return s.store.InsertMany(ctx, recipes)
}

// List returns all persisted recipes, newest first
func (s *RecipeService) List(ctx context.Context) ([]*models.Recipe, error) {
	return s.store.List(ctx)
}

// GetByID returns one recipe by its storage identifier
func (s *RecipeService) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	return s.store.GetByID(ctx, id)
}

// Rate appends a rating to a recipe; the store refreshes averageRating as
// part of the mutation.
func (s *RecipeService) Rate(ctx context.Context, recipeID, userID string, req types.RateRecipeRequest) (*models.Recipe, error) {
	rating := models.Rating{
		Value:   req.Value,
		Comment: req.Comment,
		Date:    time.Now().UTC(),
	}
	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		rating.User = oid
	}
	return s.store.AddRating(ctx, recipeID, rating)
}

// buildPrompt formats the generation prompt: five recipe variants from the
// given ingredients, returned as a JSON array with a fixed schema.
func buildPrompt(req types.GenerateRecipesRequest) string {
	servings := req.Servings
	if servings <= 0 {
		servings = 2
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional chef. Create 5 different creative recipes using these ingredients: %s.\n",
		strings.Join(req.Ingredients, ", "))
	fmt.Fprintf(&b, "Number of servings: %d.\n", servings)
	if req.Cuisine != "" {
		fmt.Fprintf(&b, "Cuisine type: %s.\n", req.Cuisine)
	}
	if req.DietaryPreferences != "" {
		fmt.Fprintf(&b, "Dietary restrictions: %s.\n", req.DietaryPreferences)
	}

	b.WriteString(`
Return the response as a JSON array with this exact structure:
[
  {
    "title": "Recipe name",
    "description": "Brief description",
    "ingredients": ["ingredient 1 with quantity", "ingredient 2 with quantity"],
    "instructions": ["step 1", "step 2", "step 3"],
    "prepTime": number in minutes,
    "cookTime": number in minutes,
    "totalTime": number in minutes (sum of prepTime and cookTime),
    "servings": number of servings,
    "cuisine": "cuisine type",
    "difficulty": "Easy", "Medium", or "Hard",
    "nutritionalInfo": {
      "calories": number,
      "protein": number,
      "carbs": number,
      "fats": number,
      "fiber": number
    },
    "dietaryInfo": {
      "vegetarian": boolean,
      "vegan": boolean,
      "glutenFree": boolean,
      "dairyFree": boolean
    }
  }
]

Include ONLY the JSON output, with no additional text.
Make sure all properties are included and properly formatted.
`)
	return b.String()
}
