// Package shopping builds shopping lists by aggregating recipe
// ingredients, normalizing quantities, and merging in manually added
// entries and persisted have-state.
package shopping

import (
	"context"
	"fmt"

	"github.com/nhle/meal-planner/internal/model"
	"github.com/nhle/meal-planner/internal/store"
	"github.com/nhle/meal-planner/internal/units"
)

// aggregate collects every ingredient link contributed by recipeIDs and
// reduces them to one item per distinct ingredient name.
//
// Recipe IDs are walked in caller order and each recipe's links in row
// order, so the merge below is deterministic. Duplicate recipe IDs are
// allowed and double-count on purpose (planning the same dish twice
// needs twice the ingredients).
func aggregate(
	ctx context.Context,
	s store.Store,
	table units.Table,
	recipeIDs []int64,
) ([]model.ShoppingItem, error) {
	type group struct {
		quantity float64
		unit     string
		category string
	}

	groups := make(map[string]*group)
	var order []string

	for _, recipeID := range recipeIDs {
		links, err := s.GetRecipeIngredients(ctx, recipeID)
		if err != nil {
			return nil, fmt.Errorf("aggregating recipe %d: %w", recipeID, err)
		}

		for _, link := range links {
			g, ok := groups[link.Name]
			if !ok {
				g = &group{}
				groups[link.Name] = g
				order = append(order, link.Name)
			}
			g.quantity += link.Quantity
			// Last non-empty value wins; empty values never
			// overwrite one already set.
			if link.Unit != "" {
				g.unit = link.Unit
			}
			if link.Category != "" {
				g.category = link.Category
			}
		}
	}

	items := make([]model.ShoppingItem, 0, len(order))
	for _, name := range order {
		g := groups[name]
		qty, unit := table.Normalize(name, g.quantity, g.unit)
		items = append(items, model.ShoppingItem{
			Name:     name,
			Quantity: qty,
			Unit:     unit,
			Category: g.category,
			Source:   model.SourceRecipe,
		})
	}

	return items, nil
}
