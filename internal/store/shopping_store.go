package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/meal-planner/internal/model"
)

// CreateShoppingEntry inserts a new manual shopping entry.
// Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateShoppingEntry(
	ctx context.Context,
	entry *model.ShoppingEntry,
) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("shopping entry name must not be empty")
	}
	if entry.Quantity < 0 {
		return fmt.Errorf("shopping entry quantity must not be negative")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shopping_entries (id, ingredient_name, quantity, unit, have, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, entry.Quantity, entry.Unit,
		boolToInt(entry.Have), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating shopping entry: %w", err)
	}
	return nil
}

// UpdateShoppingEntry updates an entry's quantity, unit, and have flag.
func (s *SQLiteStore) UpdateShoppingEntry(
	ctx context.Context,
	entry model.ShoppingEntry,
) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE shopping_entries SET quantity = ?, unit = ?, have = ? WHERE id = ?",
		entry.Quantity, entry.Unit, boolToInt(entry.Have), entry.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shopping entry %s: %w", entry.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("shopping entry %s not found", entry.ID)
	}
	return nil
}

// GetShoppingEntries retrieves all manual entries in creation order.
func (s *SQLiteStore) GetShoppingEntries(ctx context.Context) ([]model.ShoppingEntry, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM shopping_entries ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("querying shopping entries: %w", err)
	}
	defer rows.Close()

	var entries []model.ShoppingEntry
	for rows.Next() {
		entry, err := scanShoppingEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetShoppingEntryByName retrieves the first entry whose stored name
// matches exactly (case-sensitive). A missing entry is not an error:
// it returns (nil, nil).
func (s *SQLiteStore) GetShoppingEntryByName(
	ctx context.Context,
	name string,
) (*model.ShoppingEntry, error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT * FROM shopping_entries
		WHERE ingredient_name = ?
		ORDER BY created_at, id
		LIMIT 1`,
		name,
	)

	entry, err := scanShoppingEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting shopping entry %q: %w", name, err)
	}
	return &entry, nil
}

// DeleteAllShoppingEntries removes every manual entry. Deleting from an
// empty table is a no-op.
func (s *SQLiteStore) DeleteAllShoppingEntries(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM shopping_entries"); err != nil {
		return fmt.Errorf("clearing shopping entries: %w", err)
	}
	return nil
}

// SetHaveState upserts the have flag for an item key.
func (s *SQLiteStore) SetHaveState(ctx context.Context, key string, have bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO shopping_states (key, have, updated_at)
		VALUES (?, ?, ?)`,
		key, boolToInt(have), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("setting have state for %q: %w", key, err)
	}
	return nil
}

// GetHaveStates retrieves the have flag for every stored item key.
func (s *SQLiteStore) GetHaveStates(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT key, have FROM shopping_states")
	if err != nil {
		return nil, fmt.Errorf("querying have states: %w", err)
	}
	defer rows.Close()

	states := make(map[string]bool)
	for rows.Next() {
		var key string
		var have int
		if err := rows.Scan(&key, &have); err != nil {
			return nil, fmt.Errorf("scanning have state row: %w", err)
		}
		states[key] = have != 0
	}

	return states, rows.Err()
}

// scanShoppingEntry scans a shopping_entries row.
func scanShoppingEntry(row interface{ Scan(dest ...interface{}) error }) (model.ShoppingEntry, error) {
	var (
		entry   model.ShoppingEntry
		haveInt int
	)

	err := row.Scan(
		&entry.ID, &entry.Name, &entry.Quantity, &entry.Unit,
		&haveInt, &entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.ShoppingEntry{}, err
	}
	if err != nil {
		return model.ShoppingEntry{}, fmt.Errorf("scanning shopping entry row: %w", err)
	}

	entry.Have = haveInt != 0
	return entry, nil
}
