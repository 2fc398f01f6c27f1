package types

import "strings"

// Cuisine is the closed set of cuisines the gateway accepts.
type Cuisine string

const (
	CuisineItalian Cuisine = "ITALIAN"
	CuisineMexican Cuisine = "MEXICAN"
	CuisineIndian  Cuisine = "INDIAN"
	CuisineThai    Cuisine = "THAI"
	CuisineOther   Cuisine = "OTHER"
)

// ParseCuisine parses free text into a Cuisine, case-insensitively.
// Unrecognized values return false rather than an error so callers can decide
// how to report them.
func ParseCuisine(s string) (Cuisine, bool) {
	switch Cuisine(strings.ToUpper(strings.TrimSpace(s))) {
	case CuisineItalian:
		return CuisineItalian, true
	case CuisineMexican:
		return CuisineMexican, true
	case CuisineIndian:
		return CuisineIndian, true
	case CuisineThai:
		return CuisineThai, true
	case CuisineOther:
		return CuisineOther, true
	}
	return "", false
}
