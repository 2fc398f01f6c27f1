package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringArray is a custom type for storing string slices as a JSON column
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// PersistedRecipe is the archived record of one successful generation. It is
// derived from the first recipe of the response plus the request metadata,
// written once and never updated.
type PersistedRecipe struct {
	ID                 string      `gorm:"type:uuid;primaryKey" dynamodbav:"id" json:"id"`
	Title              string      `gorm:"size:255;not null" dynamodbav:"title" json:"title"`
	Ingredients        string      `gorm:"type:text;not null" dynamodbav:"ingredients" json:"ingredients"`
	Instructions       string      `gorm:"type:text" dynamodbav:"instructions" json:"instructions"`
	CookTimeMinutes    *int        `dynamodbav:"cookTimeMinutes" json:"cookTimeMinutes"`
	Prompt             string      `gorm:"type:text;not null" dynamodbav:"prompt" json:"prompt"`
	Cuisine            string      `gorm:"size:50" dynamodbav:"cuisine" json:"cuisine"`
	DietaryPreferences StringArray `gorm:"type:text" dynamodbav:"dietaryPreferences" json:"dietaryPreferences"`
	CreatedAt          string      `gorm:"size:40" dynamodbav:"createdAt" json:"createdAt"`
}
