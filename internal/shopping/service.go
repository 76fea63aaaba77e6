package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhle/meal-planner/internal/model"
	"github.com/nhle/meal-planner/internal/store"
	"github.com/nhle/meal-planner/internal/units"
)

// Service is the public shopping-list surface exposed to the UI layer.
// All methods run synchronously on the calling goroutine and return
// plain data.
type Service struct {
	store store.Store
	table units.Table
}

// NewService creates a shopping-list service over the given store and
// conversion table.
func NewService(s store.Store, table units.Table) *Service {
	return &Service{store: s, table: table}
}

// Generate builds the shopping list for a set of recipe IDs: aggregated
// recipe items first (with persisted have-state applied by item key),
// then all manual entries in creation order. Read-only; an empty input
// with no manual entries yields an empty list.
//
// A manual entry is never deduplicated against a recipe-derived item of
// the same name; the two coexist as separate rows.
func (s *Service) Generate(ctx context.Context, recipeIDs []int64) ([]model.ShoppingItem, error) {
	items, err := aggregate(ctx, s.store, s.table, recipeIDs)
	if err != nil {
		return nil, err
	}

	states, err := s.store.GetHaveStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading have states: %w", err)
	}
	for i := range items {
		if have, ok := states[items[i].Key()]; ok {
			items[i].Have = have
		}
	}

	entries, err := s.store.GetShoppingEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading manual entries: %w", err)
	}
	for _, entry := range entries {
		items = append(items, model.ShoppingItem{
			Name:     entry.Name,
			Quantity: entry.Quantity,
			Unit:     entry.Unit,
			Source:   model.SourceManual,
			Have:     entry.Have,
		})
	}

	return items, nil
}

// RecipeIDsFromMeals expands meal selection IDs into the underlying
// recipe IDs, preserving encounter order and duplicates across meals.
// Unknown meal IDs are skipped silently.
func (s *Service) RecipeIDsFromMeals(ctx context.Context, mealIDs []int64) ([]int64, error) {
	var recipeIDs []int64
	for _, mealID := range mealIDs {
		meal, err := s.store.GetMealSelectionByID(ctx, mealID)
		if err != nil {
			return nil, fmt.Errorf("loading meal %d: %w", mealID, err)
		}
		if meal == nil {
			continue
		}
		recipeIDs = append(recipeIDs, meal.RecipeIDs()...)
	}
	return recipeIDs, nil
}

// AddManualItem persists a standalone shopping entry with have=false.
// The name is trimmed and must be non-empty; the quantity must not be
// negative.
func (s *Service) AddManualItem(ctx context.Context, name string, quantity float64, unit string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}

	entry := model.ShoppingEntry{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}
	if err := s.store.CreateShoppingEntry(ctx, &entry); err != nil {
		return fmt.Errorf("adding manual item: %w", err)
	}
	return nil
}

// ClearManualItems deletes every persisted manual entry. Clearing an
// already-empty list is a no-op.
func (s *Service) ClearManualItems(ctx context.Context) error {
	if err := s.store.DeleteAllShoppingEntries(ctx); err != nil {
		return fmt.Errorf("clearing manual items: %w", err)
	}
	return nil
}

// ToggleHaveStatus flips the have flag of the manual entry whose stored
// name matches exactly. A name with no matching manual entry is a
// silent no-op; recipe-derived items are not searched — their
// have-state goes through SetItemHave instead.
func (s *Service) ToggleHaveStatus(ctx context.Context, itemName string) error {
	entry, err := s.store.GetShoppingEntryByName(ctx, itemName)
	if err != nil {
		return fmt.Errorf("toggling %q: %w", itemName, err)
	}
	if entry == nil {
		return nil
	}

	entry.Have = !entry.Have
	if err := s.store.UpdateShoppingEntry(ctx, *entry); err != nil {
		return fmt.Errorf("toggling %q: %w", itemName, err)
	}
	return nil
}

// SetItemHave records the have flag for any generated item under its
// canonical key, so recipe-derived items keep their checked state
// across regenerations.
func (s *Service) SetItemHave(ctx context.Context, name, unit string, have bool) error {
	if err := s.store.SetHaveState(ctx, model.HaveKey(name, unit), have); err != nil {
		return fmt.Errorf("setting have for %q: %w", name, err)
	}
	return nil
}
