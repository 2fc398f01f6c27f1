package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCuisine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Cuisine
		ok    bool
	}{
		{"exact match", "ITALIAN", CuisineItalian, true},
		{"lowercase", "mexican", CuisineMexican, true},
		{"mixed case", "ThAi", CuisineThai, true},
		{"surrounding whitespace", "  indian  ", CuisineIndian, true},
		{"other", "other", CuisineOther, true},
		{"unknown value", "KLINGON", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCuisine(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorCodeMessage(t *testing.T) {
	t.Run("known codes have stable messages", func(t *testing.T) {
		assert.Equal(t, "Prompt is required and cannot be blank.", CodeInvalidPrompt.Message())
		assert.Equal(t, "Recipe generation service timed out.", CodeLLMTimeout.Message())
	})

	t.Run("unknown code falls back to generic message", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred.", ErrorCode("SOMETHING_ELSE").Message())
	})
}
