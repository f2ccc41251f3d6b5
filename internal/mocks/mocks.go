// Package mocks provides substitutable fakes for handler and service tests.
package mocks

import (
	"context"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/recipegenie/backend/internal/models"
	"github.com/recipegenie/backend/internal/store"
	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// MockTextGenerator is a canned-response implementation of service.TextGenerator
type MockTextGenerator struct {
	Response   string
	Err        error
	Calls      int
	LastPrompt string
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockImageResolver derives a deterministic URL and counts invocations.
// The counter is atomic because resolution runs concurrently.
type MockImageResolver struct {
	Calls int32
}

func (m *MockImageResolver) ResolveImageURL(title string, ingredients []string) string {
	atomic.AddInt32(&m.Calls, 1)
	return "https://images.test/" + title
}

// MockRecipeStore is an in-memory implementation of service.IRecipeStore that
// mirrors the real store's contract: it owns document identity and validates
// documents before insert.
type MockRecipeStore struct {
	Recipes     []*models.Recipe
	InsertCalls int
	InsertErr   error
	ListErr     error
}

func (m *MockRecipeStore) InsertMany(ctx context.Context, recipes []*models.Recipe) ([]*models.Recipe, error) {
	m.InsertCalls++
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}
	if len(recipes) == 0 {
		return recipes, nil
	}
	var fieldErrors []string
	for _, recipe := range recipes {
		recipe.ID = primitive.NilObjectID
		if recipe.ImageURL == "" {
			recipe.ImageURL = models.DefaultImageURL
		}
		recipe.RecomputeAverageRating()
		fieldErrors = append(fieldErrors, recipe.Validate()...)
	}
	if len(fieldErrors) > 0 {
		return nil, apperrors.NewStorageValidationError(fieldErrors)
	}
	for _, recipe := range recipes {
		recipe.ID = primitive.NewObjectID()
		m.Recipes = append(m.Recipes, recipe)
	}
	return recipes, nil
}

func (m *MockRecipeStore) List(ctx context.Context) ([]*models.Recipe, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Recipes, nil
}

func (m *MockRecipeStore) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	for _, recipe := range m.Recipes {
		if recipe.ID.Hex() == id {
			return recipe, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Recipe")
}

func (m *MockRecipeStore) AddRating(ctx context.Context, id string, rating models.Rating) (*models.Recipe, error) {
	recipe, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.Ratings = append(recipe.Ratings, rating)
	recipe.RecomputeAverageRating()
	return recipe, nil
}

// MockUserStore is an in-memory implementation of service.IUserStore
type MockUserStore struct {
	Users []*models.User
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	m.Users = append(m.Users, user)
	return nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.Users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}
