// Package units holds the ingredient unit-conversion table and the
// quantity normalizer used when building shopping lists.
package units

import (
	"math"
	"sort"
	"strings"
)

// Table maps a lowercased ingredient name to its known units and their
// factors relative to the ingredient's base unit (factor 1). A Table is
// immutable after construction.
type Table struct {
	factors map[string]map[string]float64
}

// defaultConversions is the built-in table. Factors express how many
// base units one of the named unit holds, so the base unit always
// carries factor 1.
var defaultConversions = map[string]map[string]float64{
	"butter": {
		"tbsp":  1,
		"stick": 8,
		"cup":   16,
	},
	"sugar": {
		"tsp":  1,
		"tbsp": 3,
		"cup":  48,
	},
	"garlic": {
		"clove": 1,
		"head":  10,
	},
	"milk": {
		"cup":    1,
		"quart":  4,
		"gallon": 16,
	},
}

// NewTable builds an immutable Table from the given conversions, merged
// over the built-in defaults. A supplied ingredient replaces the built-in
// entry for that ingredient wholesale. All keys are lowercased.
func NewTable(extra map[string]map[string]float64) Table {
	factors := make(map[string]map[string]float64, len(defaultConversions)+len(extra))
	for name, entry := range defaultConversions {
		factors[strings.ToLower(name)] = copyEntry(entry)
	}
	for name, entry := range extra {
		factors[strings.ToLower(name)] = copyEntry(entry)
	}
	return Table{factors: factors}
}

// DefaultTable returns a Table holding only the built-in conversions.
func DefaultTable() Table {
	return NewTable(nil)
}

func copyEntry(entry map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(entry))
	for unit, factor := range entry {
		out[strings.ToLower(unit)] = factor
	}
	return out
}

// Normalize resolves the best display unit for a quantity of the named
// ingredient. Unknown ingredients and unknown units pass through
// unchanged. For known units the quantity is converted to the base
// unit, then expressed in the largest unit bigger than the queried one
// that divides it evenly; if none does, the caller's unit is kept.
// Normalization is idempotent and never turns a non-zero quantity
// into zero.
func (t Table) Normalize(name string, qty float64, unit string) (float64, string) {
	entry, ok := t.factors[strings.ToLower(name)]
	if !ok {
		return qty, unit
	}
	factor, ok := entry[strings.ToLower(unit)]
	if !ok {
		return qty, unit
	}

	baseQty := qty * factor
	for _, candidate := range unitsByFactorDesc(entry) {
		// Only larger units qualify as a simplification; once the
		// factors drop to the queried unit's own, the caller's unit
		// is preserved.
		if entry[candidate] <= factor {
			break
		}
		if math.Mod(baseQty, entry[candidate]) == 0 {
			return baseQty / entry[candidate], candidate
		}
	}
	return baseQty / factor, unit
}

// unitsByFactorDesc returns the entry's unit names ordered by factor
// descending, with equal factors broken by name so the winning
// candidate is stable.
func unitsByFactorDesc(entry map[string]float64) []string {
	names := make([]string, 0, len(entry))
	for unit := range entry {
		names = append(names, unit)
	}
	sort.Slice(names, func(i, j int) bool {
		if entry[names[i]] != entry[names[j]] {
			return entry[names[i]] > entry[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
