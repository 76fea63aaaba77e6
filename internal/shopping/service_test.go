package shopping

import (
	"context"
	"errors"
	"testing"

	"github.com/nhle/meal-planner/internal/model"
	"github.com/nhle/meal-planner/internal/units"
	"github.com/nhle/meal-planner/tests/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.NewTestStore(t), units.DefaultTable())
}

func TestGenerateEmpty(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.Generate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list, got %d items", len(items))
	}
}

func TestGenerateMergesManualAfterRecipeItems(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := mustRecipe(t, svc.store, "Toast", testLink{"bread", "Bakery", 2, "slices"})
	if err := svc.AddManualItem(ctx, "batteries", 4, ""); err != nil {
		t.Fatalf("AddManualItem failed: %v", err)
	}

	items, err := svc.Generate(ctx, []int64{id})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "bread" || items[0].Source != model.SourceRecipe {
		t.Errorf("expected recipe item first, got %+v", items[0])
	}
	if items[1].Name != "batteries" || items[1].Source != model.SourceManual {
		t.Errorf("expected manual item last, got %+v", items[1])
	}
}

func TestGenerateDoesNotDeduplicateManualAgainstRecipe(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// A manual "milk" and a recipe-derived "milk" coexist as two rows.
	id := mustRecipe(t, svc.store, "Cereal", testLink{"milk", "Dairy", 1, "cup"})
	if err := svc.AddManualItem(ctx, "milk", 1, "gallon"); err != nil {
		t.Fatalf("AddManualItem failed: %v", err)
	}

	items, err := svc.Generate(ctx, []int64{id})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 separate milk rows, got %d items", len(items))
	}
	if items[0].Source != model.SourceRecipe || items[1].Source != model.SourceManual {
		t.Errorf("expected one recipe and one manual row, got %+v", items)
	}
}

func TestGenerateAppliesPersistedHaveState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := mustRecipe(t, svc.store, "Toast", testLink{"bread", "Bakery", 2, "slices"})

	items, err := svc.Generate(ctx, []int64{id})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if items[0].Have {
		t.Fatal("expected fresh item to start unchecked")
	}

	if err := svc.SetItemHave(ctx, items[0].Name, items[0].Unit, true); err != nil {
		t.Fatalf("SetItemHave failed: %v", err)
	}

	items, err = svc.Generate(ctx, []int64{id})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !items[0].Have {
		t.Error("expected have-state to survive regeneration")
	}
}

func TestAddManualItemTrimsName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.AddManualItem(ctx, "  Milk  ", 1.0, "gallon"); err != nil {
		t.Fatalf("AddManualItem failed: %v", err)
	}

	items, err := svc.Generate(ctx, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Milk" {
		t.Errorf("expected trimmed name %q, got %q", "Milk", items[0].Name)
	}
}

func TestAddManualItemValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var verr *ValidationError

	err := svc.AddManualItem(ctx, "   ", 1, "")
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for empty name, got %v", err)
	}

	err = svc.AddManualItem(ctx, "milk", -1, "gallon")
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for negative quantity, got %v", err)
	}
}

func TestToggleHaveStatusRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.AddManualItem(ctx, "milk", 1, "gallon"); err != nil {
		t.Fatalf("AddManualItem failed: %v", err)
	}

	if err := svc.ToggleHaveStatus(ctx, "milk"); err != nil {
		t.Fatalf("ToggleHaveStatus failed: %v", err)
	}
	items, err := svc.Generate(ctx, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !items[0].Have {
		t.Error("expected toggle to check the item")
	}

	if err := svc.ToggleHaveStatus(ctx, "milk"); err != nil {
		t.Fatalf("ToggleHaveStatus failed: %v", err)
	}
	items, err = svc.Generate(ctx, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if items[0].Have {
		t.Error("expected second toggle to uncheck the item")
	}
}

func TestToggleHaveStatusUnknownNameIsNoOp(t *testing.T) {
	svc := newTestService(t)

	if err := svc.ToggleHaveStatus(context.Background(), "no such item"); err != nil {
		t.Errorf("expected silent no-op, got %v", err)
	}
}

func TestToggleHaveStatusIsCaseSensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.AddManualItem(ctx, "Milk", 1, "gallon"); err != nil {
		t.Fatalf("AddManualItem failed: %v", err)
	}
	if err := svc.ToggleHaveStatus(ctx, "milk"); err != nil {
		t.Fatalf("ToggleHaveStatus failed: %v", err)
	}

	items, err := svc.Generate(ctx, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if items[0].Have {
		t.Error("lowercase name must not match the stored entry")
	}
}

func TestClearManualItems(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.AddManualItem(ctx, "milk", 1, "gallon"); err != nil {
		t.Fatalf("AddManualItem failed: %v", err)
	}
	if err := svc.ClearManualItems(ctx); err != nil {
		t.Fatalf("ClearManualItems failed: %v", err)
	}

	items, err := svc.Generate(ctx, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected cleared list, got %d items", len(items))
	}

	// Clearing again is a no-op, not an error.
	if err := svc.ClearManualItems(ctx); err != nil {
		t.Errorf("clearing an empty list failed: %v", err)
	}
}

func TestRecipeIDsFromMeals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	main := mustRecipe(t, svc.store, "Roast")
	side1 := mustRecipe(t, svc.store, "Potatoes")
	side2 := mustRecipe(t, svc.store, "Greens")

	meal := model.MealSelection{
		Name:         "Sunday dinner",
		MainRecipeID: main,
		SideRecipe1:  &side1,
		SideRecipe3:  &side2,
	}
	if err := svc.store.CreateMealSelection(ctx, &meal); err != nil {
		t.Fatalf("CreateMealSelection failed: %v", err)
	}

	ids, err := svc.RecipeIDsFromMeals(ctx, []int64{meal.ID, meal.ID})
	if err != nil {
		t.Fatalf("RecipeIDsFromMeals failed: %v", err)
	}

	want := []int64{main, side1, side2, main, side1, side2}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestRecipeIDsFromMealsSkipsUnknownMeals(t *testing.T) {
	svc := newTestService(t)

	ids, err := svc.RecipeIDsFromMeals(context.Background(), []int64{999})
	if err != nil {
		t.Fatalf("expected missing meal to be tolerated, got %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no recipe IDs, got %v", ids)
	}
}

func TestGenerateFromMeals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	main := mustRecipe(t, svc.store, "Pasta", testLink{"tomato", "Vegetable", 4, ""})
	side := mustRecipe(t, svc.store, "Salad", testLink{"tomato", "Vegetable", 2, ""})

	meal := model.MealSelection{MainRecipeID: main, SideRecipe1: &side}
	if err := svc.store.CreateMealSelection(ctx, &meal); err != nil {
		t.Fatalf("CreateMealSelection failed: %v", err)
	}

	ids, err := svc.RecipeIDsFromMeals(ctx, []int64{meal.ID})
	if err != nil {
		t.Fatalf("RecipeIDsFromMeals failed: %v", err)
	}
	items, err := svc.Generate(ctx, ids)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Errorf("expected summed quantity 6, got %v", items[0].Quantity)
	}
}
