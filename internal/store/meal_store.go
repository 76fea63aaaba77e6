package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nhle/meal-planner/internal/model"
)

// CreateMealSelection inserts a new meal selection and sets its
// generated ID.
func (s *SQLiteStore) CreateMealSelection(
	ctx context.Context,
	meal *model.MealSelection,
) error {
	if meal.MainRecipeID == 0 {
		return fmt.Errorf("meal selection requires a main recipe")
	}
	meal.CreatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO meal_selections (
			name, main_recipe_id, side_recipe_1, side_recipe_2, side_recipe_3, created_at
		) VALUES (?, ?, ?, ?, ?, ?)`,
		meal.Name, meal.MainRecipeID,
		meal.SideRecipe1, meal.SideRecipe2, meal.SideRecipe3,
		meal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating meal selection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading meal selection id: %w", err)
	}
	meal.ID = id
	return nil
}

// DeleteMealSelection removes a meal selection by ID.
func (s *SQLiteStore) DeleteMealSelection(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM meal_selections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting meal selection %d: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("meal selection %d not found", id)
	}
	return nil
}

// GetMealSelectionByID retrieves a single meal selection by ID.
// A missing meal is not an error: it returns (nil, nil).
func (s *SQLiteStore) GetMealSelectionByID(
	ctx context.Context,
	id int64,
) (*model.MealSelection, error) {
	var meal model.MealSelection
	err := s.db.QueryRowxContext(ctx,
		"SELECT * FROM meal_selections WHERE id = ?", id,
	).Scan(
		&meal.ID, &meal.Name, &meal.MainRecipeID,
		&meal.SideRecipe1, &meal.SideRecipe2, &meal.SideRecipe3,
		&meal.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting meal selection %d: %w", id, err)
	}
	return &meal, nil
}

// GetMealSelections retrieves all meal selections in creation order.
func (s *SQLiteStore) GetMealSelections(ctx context.Context) ([]model.MealSelection, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM meal_selections ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying meal selections: %w", err)
	}
	defer rows.Close()

	var meals []model.MealSelection
	for rows.Next() {
		var meal model.MealSelection
		err := rows.Scan(
			&meal.ID, &meal.Name, &meal.MainRecipeID,
			&meal.SideRecipe1, &meal.SideRecipe2, &meal.SideRecipe3,
			&meal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning meal selection row: %w", err)
		}
		meals = append(meals, meal)
	}

	return meals, rows.Err()
}
