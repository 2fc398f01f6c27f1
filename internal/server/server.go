package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autochef/recipe-gateway/config"
	"github.com/autochef/recipe-gateway/internal/api"
	"github.com/autochef/recipe-gateway/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance with all routes registered. The rate
// limiter is optional; pass nil to disable throttling.
func New(cfg *config.Config, recipeHandler *api.RecipeHandler, limiter *middleware.RateLimiter) *Server {
	router := gin.Default()

	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	var generateMiddleware []gin.HandlerFunc
	if limiter != nil {
		generateMiddleware = append(generateMiddleware, limiter.RateLimitMiddleware())
	}
	recipeHandler.RegisterRoutes(v1, generateMiddleware...)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
