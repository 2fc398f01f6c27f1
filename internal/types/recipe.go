package types

// GenerateRecipeRequest is the request body for recipe generation. The same
// shape is forwarded verbatim to the downstream generation service.
type GenerateRecipeRequest struct {
	Prompt             string   `json:"prompt"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty"`
	Cuisine            string   `json:"cuisine"`
}

// Ingredient is a single ingredient with its quantity and unit.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is a single generated recipe.
type Recipe struct {
	Title           string       `json:"title"`
	Ingredients     []Ingredient `json:"ingredients"`
	Instructions    string       `json:"instructions"`
	CookTimeMinutes *int         `json:"cookTimeMinutes,omitempty"`
}

// RecipeResponse wraps the generated recipes. This is the unit returned to
// the caller and the unit stored in the result cache.
type RecipeResponse struct {
	Recipes []Recipe `json:"recipes"`
}
