package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autochef/recipe-gateway/internal/models"
	"github.com/autochef/recipe-gateway/internal/service"
	"github.com/autochef/recipe-gateway/internal/types"
)

// RecipeServicer is the service surface the handlers need.
type RecipeServicer interface {
	GenerateRecipe(ctx context.Context, req types.GenerateRecipeRequest) (*types.RecipeResponse, error)
	GetRecipe(ctx context.Context, id string) (*models.PersistedRecipe, error)
	ListRecipes(ctx context.Context) ([]models.PersistedRecipe, error)
}

// RecipeHandler handles recipe generation and archive requests
type RecipeHandler struct {
	service RecipeServicer
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(svc RecipeServicer) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

// RegisterRoutes registers the recipe routes. Middleware applies to the
// generation route only; archive reads stay unthrottled.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, generateMiddleware ...gin.HandlerFunc) {
	handlers := append(generateMiddleware, h.GenerateRecipe)
	router.POST("/generate-recipe", handlers...)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// GenerateRecipe handles POST /generate-recipe
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, types.CodeBadRequest)
		return
	}

	resp, err := h.service.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListRecipes handles GET /recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	records, err := h.service.ListRecipes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if records == nil {
		records = []models.PersistedRecipe{}
	}

	c.JSON(http.StatusOK, gin.H{"recipes": records})
}

// GetRecipe handles GET /recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	record, err := h.service.GetRecipe(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  http.StatusNotFound,
			Code:    "NOT_FOUND",
			Message: "recipe not found",
		})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// writeError maps the error taxonomy to wire-level status codes. This is the
// single place typed errors become HTTP responses; anything unclassified is
// logged and surfaced as a bare 500.
func writeError(c *gin.Context, err error) {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		writeErrorCode(c, http.StatusBadRequest, validationErr.Code)
		return
	}

	var downstreamErr *types.DownstreamError
	if errors.As(err, &downstreamErr) {
		status := http.StatusBadGateway
		if downstreamErr.Code == types.CodeLLMTimeout {
			status = http.StatusGatewayTimeout
		}
		log.Printf("downstream failure: %v", downstreamErr)
		writeErrorCode(c, status, downstreamErr.Code)
		return
	}

	log.Printf("unhandled error: %v", err)
	writeErrorCode(c, http.StatusInternalServerError, types.CodeInternalError)
}

func writeErrorCode(c *gin.Context, status int, code types.ErrorCode) {
	c.JSON(status, types.ErrorResponse{
		Status:  status,
		Code:    string(code),
		Message: code.Message(),
	})
}
