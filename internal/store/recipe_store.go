package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/nhle/meal-planner/internal/model"
)

// CreateRecipe inserts a new recipe and sets its generated ID.
func (s *SQLiteStore) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	if strings.TrimSpace(recipe.Name) == "" {
		return fmt.Errorf("recipe name must not be empty")
	}
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes (name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		recipe.Name, recipe.Description, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating recipe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading recipe id: %w", err)
	}
	recipe.ID = id
	return nil
}

// UpdateRecipe updates an existing recipe's name and description.
func (s *SQLiteStore) UpdateRecipe(ctx context.Context, recipe model.Recipe) error {
	if strings.TrimSpace(recipe.Name) == "" {
		return fmt.Errorf("recipe name must not be empty")
	}
	recipe.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE recipes SET name = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		recipe.Name, recipe.Description, recipe.UpdatedAt, recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("updating recipe %d: %w", recipe.ID, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("recipe %d not found", recipe.ID)
	}
	return nil
}

// DeleteRecipe removes a recipe by ID. Cascades to recipe_ingredients.
func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting recipe %d: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("recipe %d not found", id)
	}
	return nil
}

// GetRecipeByID retrieves a single recipe by ID, including its
// ingredient links.
func (s *SQLiteStore) GetRecipeByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.QueryRowxContext(ctx,
		"SELECT * FROM recipes WHERE id = ?", id,
	).Scan(
		&recipe.ID, &recipe.Name, &recipe.Description,
		&recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("getting recipe %d: %w", id, err)
	}

	ingredients, err := s.GetRecipeIngredients(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading ingredients for recipe %d: %w", id, err)
	}
	recipe.Ingredients = ingredients

	return &recipe, nil
}

// GetRecipes retrieves all recipes ordered by name.
func (s *SQLiteStore) GetRecipes(ctx context.Context) ([]model.Recipe, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM recipes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var recipe model.Recipe
		err := rows.Scan(
			&recipe.ID, &recipe.Name, &recipe.Description,
			&recipe.CreatedAt, &recipe.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe row: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

// GetOrCreateIngredient returns the ingredient with the given name and
// category, creating it if it does not exist. Name and category are
// trimmed and must be non-empty.
func (s *SQLiteStore) GetOrCreateIngredient(
	ctx context.Context,
	name, category string,
) (*model.Ingredient, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, fmt.Errorf("ingredient name must not be empty")
	}
	if category == "" {
		return nil, fmt.Errorf("ingredient category must not be empty")
	}

	var ing model.Ingredient
	err := s.db.QueryRowxContext(ctx,
		"SELECT id, name, category FROM ingredients WHERE name = ? AND category = ?",
		name, category,
	).Scan(&ing.ID, &ing.Name, &ing.Category)
	if err == nil {
		return &ing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("looking up ingredient %q: %w", name, err)
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO ingredients (name, category) VALUES (?, ?)",
		name, category,
	)
	if err != nil {
		return nil, fmt.Errorf("creating ingredient %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading ingredient id: %w", err)
	}

	return &model.Ingredient{ID: id, Name: name, Category: category}, nil
}

// GetIngredients retrieves all ingredients ordered by name, then category.
func (s *SQLiteStore) GetIngredients(ctx context.Context) ([]model.Ingredient, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name, category FROM ingredients ORDER BY name, category")
	if err != nil {
		return nil, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Category); err != nil {
			return nil, fmt.Errorf("scanning ingredient row: %w", err)
		}
		ingredients = append(ingredients, ing)
	}

	return ingredients, rows.Err()
}

// AddRecipeIngredient links an ingredient to a recipe with an optional
// quantity and unit.
func (s *SQLiteStore) AddRecipeIngredient(
	ctx context.Context,
	recipeID, ingredientID int64,
	quantity float64,
	unit string,
) error {
	if quantity < 0 {
		return fmt.Errorf("ingredient quantity must not be negative")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit)
		VALUES (?, ?, ?, ?)`,
		recipeID, ingredientID, quantity, unit,
	)
	if err != nil {
		return fmt.Errorf("linking ingredient %d to recipe %d: %w", ingredientID, recipeID, err)
	}
	return nil
}

// RemoveRecipeIngredient removes a single recipe-ingredient link by its
// row id.
func (s *SQLiteStore) RemoveRecipeIngredient(ctx context.Context, linkID int64) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM recipe_ingredients WHERE id = ?", linkID)
	if err != nil {
		return fmt.Errorf("removing recipe ingredient %d: %w", linkID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("recipe ingredient %d not found", linkID)
	}
	return nil
}

// GetRecipeIngredients returns the recipe's join rows with the
// ingredient name and category resolved, ordered by link row id so
// iteration order is stable.
func (s *SQLiteStore) GetRecipeIngredients(
	ctx context.Context,
	recipeID int64,
) ([]model.RecipeIngredient, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT ri.id, ri.recipe_id, ri.ingredient_id, ri.quantity, ri.unit,
		       i.name, i.category
		FROM recipe_ingredients ri
		INNER JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ?
		ORDER BY ri.id`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying ingredients for recipe %d: %w", recipeID, err)
	}
	defer rows.Close()

	var links []model.RecipeIngredient
	for rows.Next() {
		var link model.RecipeIngredient
		err := rows.Scan(
			&link.ID, &link.RecipeID, &link.IngredientID,
			&link.Quantity, &link.Unit,
			&link.Name, &link.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe ingredient row: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
