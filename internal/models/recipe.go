package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionalInfo holds the per-serving nutrition breakdown of a recipe
type NutritionalInfo struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fats     float64 `bson:"fats" json:"fats"`
	Fiber    float64 `bson:"fiber" json:"fiber"`
}

// DietaryInfo flags the dietary categories a recipe satisfies
type DietaryInfo struct {
	Vegetarian bool `bson:"vegetarian" json:"vegetarian"`
	Vegan      bool `bson:"vegan" json:"vegan"`
	GlutenFree bool `bson:"glutenFree" json:"glutenFree"`
	DairyFree  bool `bson:"dairyFree" json:"dairyFree"`
}

// Rating is a single user rating embedded in a recipe document
type Rating struct {
	User    primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Value   int                `bson:"value" json:"value"`
	Comment string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Date    time.Time          `bson:"date" json:"date"`
}

// Recipe is a persisted recipe document
type Recipe struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string              `bson:"title" json:"title"`
	Description     string              `bson:"description" json:"description"`
	Ingredients     []string            `bson:"ingredients" json:"ingredients"`
	Instructions    []string            `bson:"instructions" json:"instructions"`
	ImageURL        string              `bson:"imageUrl" json:"imageUrl"`
	Servings        int                 `bson:"servings" json:"servings"`
	PrepTime        int                 `bson:"prepTime" json:"prepTime"`
	CookTime        int                 `bson:"cookTime" json:"cookTime"`
	TotalTime       int                 `bson:"totalTime" json:"totalTime"`
	Cuisine         string              `bson:"cuisine" json:"cuisine"`
	Difficulty      string              `bson:"difficulty" json:"difficulty"`
	NutritionalInfo NutritionalInfo     `bson:"nutritionalInfo" json:"nutritionalInfo"`
	DietaryInfo     DietaryInfo         `bson:"dietaryInfo" json:"dietaryInfo"`
	Ratings         []Rating            `bson:"ratings" json:"ratings"`
	AverageRating   float64             `bson:"averageRating" json:"averageRating"`
	Creator         *primitive.ObjectID `bson:"creator,omitempty" json:"creator,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
}

// Difficulty levels accepted for a recipe
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// DefaultImageURL is the placeholder used when no image could be derived
const DefaultImageURL = "https://picsum.photos/600/400"

// IsValidDifficulty reports whether d is one of the accepted difficulty levels
func IsValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Validate checks the schema constraints a document must satisfy before
// persistence and returns one message per offending field.
func (r *Recipe) Validate() []string {
	var errs []string
	if r.Title == "" {
		errs = append(errs, "title: Please add a title")
	}
	if r.Description == "" {
		errs = append(errs, "description: Please add a description")
	}
	if len(r.Ingredients) == 0 {
		errs = append(errs, "ingredients: Please add ingredients")
	}
	if len(r.Instructions) == 0 {
		errs = append(errs, "instructions: Please add instructions")
	}
	if r.Servings <= 0 {
		errs = append(errs, "servings: Please add number of servings")
	}
	if r.PrepTime < 0 {
		errs = append(errs, "prepTime: Please add preparation time")
	}
	if r.CookTime < 0 {
		errs = append(errs, "cookTime: Please add cooking time")
	}
	if r.TotalTime < 0 {
		errs = append(errs, "totalTime: Please add total time")
	}
	if !IsValidDifficulty(r.Difficulty) {
		errs = append(errs, fmt.Sprintf("difficulty: %q is not a valid difficulty", r.Difficulty))
	}
	for i, rating := range r.Ratings {
		if rating.Value < 1 || rating.Value > 5 {
			errs = append(errs, fmt.Sprintf("ratings.%d.value: value must be between 1 and 5", i))
		}
	}
	return errs
}

// RecomputeAverageRating refreshes the derived averageRating field. It must be
// called on every mutation that changes Ratings.
func (r *Recipe) RecomputeAverageRating() {
	if len(r.Ratings) == 0 {
		r.AverageRating = 0
		return
	}
	sum := 0
	for _, rating := range r.Ratings {
		sum += rating.Value
	}
	r.AverageRating = float64(sum) / float64(len(r.Ratings))
}
