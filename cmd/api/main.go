package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/autochef/recipe-gateway/config"
	"github.com/autochef/recipe-gateway/internal/api"
	"github.com/autochef/recipe-gateway/internal/database"
	"github.com/autochef/recipe-gateway/internal/middleware"
	"github.com/autochef/recipe-gateway/internal/server"
	"github.com/autochef/recipe-gateway/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient := database.NewRedisClient(cfg)

	var store service.RecipeStore
	switch cfg.StoreBackend {
	case config.StoreBackendDynamoDB:
		dynamoStore, err := service.NewDynamoRecipeStore(context.Background(), cfg.StoreTable, cfg.AWSRegion)
		if err != nil {
			log.Fatalf("Failed to initialize DynamoDB store: %v", err)
		}
		store = dynamoStore
	default:
		db, err := database.NewDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		store = service.NewGormRecipeStore(db, cfg.StoreTable)
	}

	recipeService := service.NewRecipeService(
		service.NewValidationService(),
		service.NewGeneratorClient(cfg.DownstreamURL, cfg.DownstreamTimeout),
		service.NewRecipeCache(redisClient),
		store,
		cfg.CacheTTL,
		cfg.PersistMode == config.PersistModeSync,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerHour > 0 {
		limiter = middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimitPerHour)
	}

	srv := server.New(cfg, api.NewRecipeHandler(recipeService), limiter)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
