// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment does not override them
const (
	DefaultMongoDBURI = "mongodb://localhost:27017/recipe-genie"
	DefaultPort       = "5000"
	DefaultDBName     = "recipe-genie"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	MongoDBURI string
	DBName     string

	// Gemini configuration
	GeminiAPIKey string
	GeminiAPIURL string

	// JWT configuration
	JWTSecret string
}

// LoadConfig creates a Config from environment variables. A .env file in the
// working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", DefaultPort),
		MongoDBURI:   getEnv("MONGODB_URI", DefaultMongoDBURI),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiAPIURL: os.Getenv("GEMINI_API_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}
	cfg.DBName = dbNameFromURI(cfg.MongoDBURI)

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// dbNameFromURI extracts the database name from a MongoDB connection string
func dbNameFromURI(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return DefaultDBName
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return DefaultDBName
	}
	return name
}
