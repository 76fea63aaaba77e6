package store

import (
	"context"

	"github.com/nhle/meal-planner/internal/model"
)

// Store defines the persistence interface for recipes, ingredients,
// meal selections, and shopping-list state.
type Store interface {
	// === Recipes ===

	CreateRecipe(ctx context.Context, recipe *model.Recipe) error
	UpdateRecipe(ctx context.Context, recipe model.Recipe) error
	DeleteRecipe(ctx context.Context, id int64) error
	GetRecipeByID(ctx context.Context, id int64) (*model.Recipe, error)
	GetRecipes(ctx context.Context) ([]model.Recipe, error)

	// === Ingredients & recipe links ===

	GetOrCreateIngredient(ctx context.Context, name, category string) (*model.Ingredient, error)
	GetIngredients(ctx context.Context) ([]model.Ingredient, error)
	AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64, quantity float64, unit string) error
	RemoveRecipeIngredient(ctx context.Context, linkID int64) error

	// GetRecipeIngredients returns the recipe's join rows with ingredient
	// name and category resolved, ordered by link row id.
	GetRecipeIngredients(ctx context.Context, recipeID int64) ([]model.RecipeIngredient, error)

	// === Meal selections ===

	CreateMealSelection(ctx context.Context, meal *model.MealSelection) error
	DeleteMealSelection(ctx context.Context, id int64) error

	// GetMealSelectionByID returns (nil, nil) when no such meal exists.
	GetMealSelectionByID(ctx context.Context, id int64) (*model.MealSelection, error)
	GetMealSelections(ctx context.Context) ([]model.MealSelection, error)

	// === Manual shopping entries ===

	CreateShoppingEntry(ctx context.Context, entry *model.ShoppingEntry) error
	UpdateShoppingEntry(ctx context.Context, entry model.ShoppingEntry) error
	GetShoppingEntries(ctx context.Context) ([]model.ShoppingEntry, error)

	// GetShoppingEntryByName matches the stored name exactly and returns
	// (nil, nil) when no entry matches.
	GetShoppingEntryByName(ctx context.Context, name string) (*model.ShoppingEntry, error)
	DeleteAllShoppingEntries(ctx context.Context) error

	// === Have-state ===

	SetHaveState(ctx context.Context, key string, have bool) error
	GetHaveStates(ctx context.Context) (map[string]bool, error)
}
