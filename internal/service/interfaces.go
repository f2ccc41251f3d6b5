package service

import (
	"context"

	"github.com/recipegenie/backend/internal/models"
	"github.com/recipegenie/backend/internal/types"
)

// TextGenerator defines the interface for a generative text model
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ImageResolver defines the interface for deriving a recipe image URL.
// Implementations never fail: they always return a usable URL.
type ImageResolver interface {
	ResolveImageURL(title string, ingredients []string) string
}

// IRecipeStore defines the interface for recipe persistence
type IRecipeStore interface {
	InsertMany(ctx context.Context, recipes []*models.Recipe) ([]*models.Recipe, error)
	List(ctx context.Context) ([]*models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	AddRating(ctx context.Context, id string, rating models.Rating) (*models.Recipe, error)
}

// IUserStore defines the interface for user persistence
type IUserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Generate(ctx context.Context, req types.GenerateRecipesRequest) ([]*models.Recipe, error)
	List(ctx context.Context) ([]*models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Rate(ctx context.Context, recipeID, userID string, req types.RateRecipeRequest) (*models.Recipe, error)
}
