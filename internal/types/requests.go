package types

// GenerateRecipesRequest represents the request body for generating recipes
type GenerateRecipesRequest struct {
	Ingredients        []string `json:"ingredients"`
	Servings           int      `json:"servings"`
	Cuisine            string   `json:"cuisine"`
	DietaryPreferences string   `json:"dietaryPreferences"`
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RateRecipeRequest represents the request body for rating a recipe
type RateRecipeRequest struct {
	Value   int    `json:"value" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
