package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recipegenie/backend/internal/models"
	apperrors "github.com/recipegenie/backend/pkg/errors"
)

// RecipeStore persists recipe documents in the "recipes" collection
type RecipeStore struct {
	collection *mongo.Collection
}

// NewRecipeStore creates a new RecipeStore instance
func NewRecipeStore(db *mongo.Database) *RecipeStore {
	return &RecipeStore{collection: db.Collection("recipes")}
}

// InsertMany bulk-writes recipes in one operation. The store owns document
// identity: any identifier already set on a recipe is discarded and replaced
// with the storage-assigned one. Documents failing schema constraints abort
// the whole insert with per-field messages. An empty batch is a no-op: the
// driver rejects empty input slices, so it never reaches the collection.
func (s *RecipeStore) InsertMany(ctx context.Context, recipes []*models.Recipe) ([]*models.Recipe, error) {
	if len(recipes) == 0 {
		return recipes, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(recipes))
	var fieldErrors []string
	for _, recipe := range recipes {
		recipe.ID = primitive.NilObjectID
		if recipe.CreatedAt.IsZero() {
			recipe.CreatedAt = now
		}
		if recipe.ImageURL == "" {
			recipe.ImageURL = models.DefaultImageURL
		}
		recipe.RecomputeAverageRating()
		fieldErrors = append(fieldErrors, recipe.Validate()...)
		docs = append(docs, recipe)
	}
	if len(fieldErrors) > 0 {
		return nil, apperrors.NewStorageValidationError(fieldErrors)
	}

	res, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(recipes) {
			recipes[i].ID = oid
		}
	}
	return recipes, nil
}

// List returns all recipes, newest first
func (s *RecipeStore) List(ctx context.Context) ([]*models.Recipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer cursor.Close(ctx)

	recipes := make([]*models.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return recipes, nil
}

// GetByID returns one recipe by its storage identifier
func (s *RecipeStore) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Recipe")
	}

	var recipe models.Recipe
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("Recipe")
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &recipe, nil
}

// AddRating appends a rating to a recipe and refreshes its averageRating in
// the same update.
func (s *RecipeStore) AddRating(ctx context.Context, id string, rating models.Rating) (*models.Recipe, error) {
	recipe, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.Ratings = append(recipe.Ratings, rating)
	recipe.RecomputeAverageRating()
	if fieldErrors := recipe.Validate(); len(fieldErrors) > 0 {
		return nil, apperrors.NewStorageValidationError(fieldErrors)
	}

	update := bson.M{"$set": bson.M{
		"ratings":       recipe.Ratings,
		"averageRating": recipe.AverageRating,
	}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": recipe.ID}, update); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return recipe, nil
}
