package service

import (
	"strings"

	"github.com/autochef/recipe-gateway/internal/types"
)

// ValidationService validates incoming generation requests. It is a pure
// function of its input; rules are applied in order and the first failure
// wins.
type ValidationService struct{}

// NewValidationService creates a new ValidationService instance
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateRecipeRequest ensures all required fields are present and valid.
func (s *ValidationService) ValidateRecipeRequest(req types.GenerateRecipeRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return &types.ValidationError{Code: types.CodeInvalidPrompt}
	}
	if _, ok := types.ParseCuisine(req.Cuisine); !ok {
		return &types.ValidationError{Code: types.CodeInvalidCuisine}
	}
	return nil
}
