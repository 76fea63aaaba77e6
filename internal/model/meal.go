package model

import "time"

// MealSelection groups one main recipe and up to three optional sides
// into a single planning unit.
type MealSelection struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	MainRecipeID int64     `json:"main_recipe_id" db:"main_recipe_id"`
	SideRecipe1  *int64    `json:"side_recipe_1,omitempty" db:"side_recipe_1"`
	SideRecipe2  *int64    `json:"side_recipe_2,omitempty" db:"side_recipe_2"`
	SideRecipe3  *int64    `json:"side_recipe_3,omitempty" db:"side_recipe_3"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RecipeIDs returns the main recipe followed by any set side recipes,
// in slot order.
func (m MealSelection) RecipeIDs() []int64 {
	ids := []int64{m.MainRecipeID}
	for _, side := range []*int64{m.SideRecipe1, m.SideRecipe2, m.SideRecipe3} {
		if side != nil {
			ids = append(ids, *side)
		}
	}
	return ids
}
