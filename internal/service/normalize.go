package service

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/recipegenie/backend/internal/models"
	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// NormalizeDefaults carries the request-level fallbacks applied when a
// generated recipe omits a field.
type NormalizeDefaults struct {
	Servings int
	Cuisine  string
}

// rawRecipe mirrors the JSON shape requested from the model, tolerating the
// loose typing of generated output. Pointer fields distinguish absent from
// zero so the default table below stays explicit.
type rawRecipe struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Ingredients     []string            `json:"ingredients"`
	Instructions    []string            `json:"instructions"`
	PrepTime        float64             `json:"prepTime"`
	CookTime        float64             `json:"cookTime"`
	TotalTime       *float64            `json:"totalTime"`
	Servings        *float64            `json:"servings"`
	Cuisine         string              `json:"cuisine"`
	Difficulty      string              `json:"difficulty"`
	NutritionalInfo *rawNutritionalInfo `json:"nutritionalInfo"`
	DietaryInfo     *models.DietaryInfo `json:"dietaryInfo"`

	// Legacy flat nutrition fields some model outputs place at the top level
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	Fiber    *float64 `json:"fiber"`
}

type rawNutritionalInfo struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	Fiber    *float64 `json:"fiber"`
}

// Normalizer turns raw model output into persistable recipe documents
type Normalizer struct {
	images ImageResolver
}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer(images ImageResolver) *Normalizer {
	return &Normalizer{images: images}
}

// Normalize parses the raw model output and applies the field default policy
// to each recipe. Output order follows the order the model produced.
func (n *Normalizer) Normalize(raw string, defaults NormalizeDefaults) ([]*models.Recipe, error) {
	rawRecipes, err := extractRecipes(raw)
	if err != nil {
		return nil, err
	}

	recipes := make([]*models.Recipe, len(rawRecipes))
	for i, rr := range rawRecipes {
		recipes[i] = normalizeRecipe(rr, defaults)
	}

	// Image resolution per recipe is independent; run concurrently but keep
	// output order equal to input order.
	var wg sync.WaitGroup
	for i := range recipes {
		wg.Add(1)
		go func(r *models.Recipe) {
			defer wg.Done()
			r.ImageURL = n.images.ResolveImageURL(r.Title, r.Ingredients)
		}(recipes[i])
	}
	wg.Wait()

	return recipes, nil
}

// extractRecipes locates the JSON array embedded in free-form model output.
// When the text contains no array-shaped substring the whole text is tried
// as JSON.
func extractRecipes(raw string) ([]rawRecipe, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")

	var recipes []rawRecipe
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &recipes); err != nil {
			return nil, apperrors.NewResponseParseError(raw, err)
		}
		return recipes, nil
	}

	if err := json.Unmarshal([]byte(raw), &recipes); err != nil || recipes == nil {
		return nil, apperrors.NewResponseParseError(raw, err)
	}
	return recipes, nil
}

// normalizeRecipe applies the default table:
//
//	totalTime       provided, else prepTime + cookTime
//	difficulty      provided when exactly Easy/Medium/Hard, else Medium
//	nutritionalInfo nested value, else legacy flat field, else 0 (per field)
//	servings        provided, else requested, else 2
//	cuisine         provided, else requested, else "Mixed"
func normalizeRecipe(rr rawRecipe, defaults NormalizeDefaults) *models.Recipe {
	prepTime := int(rr.PrepTime)
	cookTime := int(rr.CookTime)

	totalTime := prepTime + cookTime
	if rr.TotalTime != nil {
		totalTime = int(*rr.TotalTime)
	}

	difficulty := rr.Difficulty
	if !models.IsValidDifficulty(difficulty) {
		difficulty = models.DifficultyMedium
	}

	servings := 2
	if rr.Servings != nil && int(*rr.Servings) > 0 {
		servings = int(*rr.Servings)
	} else if defaults.Servings > 0 {
		servings = defaults.Servings
	}

	cuisine := rr.Cuisine
	if cuisine == "" {
		cuisine = defaults.Cuisine
	}
	if cuisine == "" {
		cuisine = "Mixed"
	}

	var dietary models.DietaryInfo
	if rr.DietaryInfo != nil {
		dietary = *rr.DietaryInfo
	}

	return &models.Recipe{
		Title:           rr.Title,
		Description:     rr.Description,
		Ingredients:     rr.Ingredients,
		Instructions:    rr.Instructions,
		PrepTime:        prepTime,
		CookTime:        cookTime,
		TotalTime:       totalTime,
		Servings:        servings,
		Cuisine:         cuisine,
		Difficulty:      difficulty,
		NutritionalInfo: normalizeNutrition(rr),
		DietaryInfo:     dietary,
	}
}

func normalizeNutrition(rr rawRecipe) models.NutritionalInfo {
	pick := func(nested, flat *float64) float64 {
		if nested != nil {
			return *nested
		}
		if flat != nil {
			return *flat
		}
		return 0
	}

	var info models.NutritionalInfo
	if rr.NutritionalInfo != nil {
		info.Calories = pick(rr.NutritionalInfo.Calories, rr.Calories)
		info.Protein = pick(rr.NutritionalInfo.Protein, rr.Protein)
		info.Carbs = pick(rr.NutritionalInfo.Carbs, rr.Carbs)
		info.Fats = pick(rr.NutritionalInfo.Fats, rr.Fats)
		info.Fiber = pick(rr.NutritionalInfo.Fiber, rr.Fiber)
		return info
	}
	info.Calories = pick(nil, rr.Calories)
	info.Protein = pick(nil, rr.Protein)
	info.Carbs = pick(nil, rr.Carbs)
	info.Fats = pick(nil, rr.Fats)
	info.Fiber = pick(nil, rr.Fiber)
	return info
}
