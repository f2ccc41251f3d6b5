package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipegenie/backend/config"
	"github.com/recipegenie/backend/internal/api"
	"github.com/recipegenie/backend/internal/router"
	"github.com/recipegenie/backend/internal/server"
	"github.com/recipegenie/backend/internal/service"
	"github.com/recipegenie/backend/internal/store"
	"github.com/recipegenie/backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: os.Getenv("LOG_LEVEL")})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	client, err := store.Connect(context.Background(), cfg.MongoDBURI)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			zapLogger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	zapLogger.Info("MongoDB connected", zap.String("database", cfg.DBName))

	db := client.Database(cfg.DBName)
	recipeStore := store.NewRecipeStore(db)
	userStore := store.NewUserStore(db)

	authService := service.NewAuthService(userStore, cfg.JWTSecret)
	geminiService := service.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiAPIURL, zapLogger)
	recipeService := service.NewRecipeService(geminiService, recipeStore, service.NewImageService(), zapLogger)

	authHandler := api.NewAuthHandler(authService, zapLogger)
	recipeHandler := api.NewRecipeHandler(recipeService, authService, zapLogger)

	srv := server.New(router.SetupRouter(authHandler, recipeHandler), cfg.Port, zapLogger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zapLogger.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		zapLogger.Info("Received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Server shutdown error", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}
