package model

import "time"

// Recipe is a user-authored dish definition. Its ingredient links are
// stored separately in recipe_ingredients and cascade-delete with it.
type Recipe struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Ingredients is populated by queries that join with recipe_ingredients.
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" db:"-"`
}

// RecipeIngredient is a join row associating a recipe with an ingredient
// plus an optional quantity and free-text unit.
type RecipeIngredient struct {
	ID           int64   `json:"id" db:"id"`
	RecipeID     int64   `json:"recipe_id" db:"recipe_id"`
	IngredientID int64   `json:"ingredient_id" db:"ingredient_id"`
	Quantity     float64 `json:"quantity" db:"quantity"`
	Unit         string  `json:"unit" db:"unit"`

	// Name and Category are populated by join queries against ingredients.
	Name     string `json:"name,omitempty" db:"-"`
	Category string `json:"category,omitempty" db:"-"`
}
