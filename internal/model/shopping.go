package model

import (
	"strings"
	"time"
)

// ShoppingItem source constants.
const (
	SourceRecipe = "recipe"
	SourceManual = "manual"
)

// ShoppingItem is one row of a generated shopping list. Recipe-derived
// items are recomputed on every generation and never stored as-is;
// manual items are backed by a ShoppingEntry row.
type ShoppingItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
	Category string  `json:"category,omitempty"`
	Source   string  `json:"source"`
	Have     bool    `json:"have"`
}

// Key returns the canonical have-state key for this item.
func (i ShoppingItem) Key() string {
	return HaveKey(i.Name, i.Unit)
}

// ShoppingEntry is a persisted standalone shopping item added by the
// user directly, not derived from any recipe.
type ShoppingEntry struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"ingredient_name"`
	Quantity  float64   `json:"quantity" db:"quantity"`
	Unit      string    `json:"unit" db:"unit"`
	Have      bool      `json:"have" db:"have"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HaveKey builds the persisted have-state key for an item. The exact
// format must round-trip across regenerations, so recipe-derived items
// keep their checked state even though they are never stored.
func HaveKey(name, unit string) string {
	return strings.ToLower(name) + "::" + strings.ToLower(unit)
}
