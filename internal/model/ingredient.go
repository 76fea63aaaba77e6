package model

// Ingredient is a named foodstuff with a category (e.g., "Vegetable").
// Immutable once created; unique by (name, category).
type Ingredient struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"`
}
