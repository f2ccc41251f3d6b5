package service

import (
	"net/url"
	"strings"
)

const (
	imageSearchURL   = "https://source.unsplash.com/featured/?food,"
	fallbackImageURL = "https://source.unsplash.com/random/600x400/?food"
)

// ImageService derives a search-style image URL from a recipe's ingredients.
// It performs no network calls and never fails.
type ImageService struct{}

// NewImageService creates a new ImageService instance
func NewImageService() *ImageService {
	return &ImageService{}
}

// ResolveImageURL derives an image URL for a recipe. The query is built from
// the first token of each of the first two ingredients, lower-cased and
// comma-joined. When no usable token exists it falls back to a generic food
// image URL.
func (s *ImageService) ResolveImageURL(title string, ingredients []string) string {
	query := ImageQueryTokens(ingredients)
	if query == "" {
		return fallbackImageURL
	}
	return imageSearchURL + url.QueryEscape(query)
}

// ImageQueryTokens extracts the search tokens used in the derived image URL:
// the first whitespace-delimited word of each of the first two ingredients,
// lower-cased and joined with a comma.
func ImageQueryTokens(ingredients []string) string {
	if len(ingredients) > 2 {
		ingredients = ingredients[:2]
	}
	tokens := make([]string, 0, 2)
	for _, ing := range ingredients {
		fields := strings.Fields(ing)
		if len(fields) == 0 {
			continue
		}
		tokens = append(tokens, strings.ToLower(fields[0]))
	}
	return strings.Join(tokens, ",")
}
