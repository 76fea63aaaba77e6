package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS recipes (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS ingredients (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL,
	category TEXT NOT NULL,
	UNIQUE(name, category)
);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	recipe_id     INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
	ingredient_id INTEGER NOT NULL REFERENCES ingredients(id),
	quantity      REAL NOT NULL DEFAULT 0 CHECK(quantity >= 0),
	unit          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS meal_selections (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	name           TEXT NOT NULL DEFAULT '',
	main_recipe_id INTEGER NOT NULL REFERENCES recipes(id),
	side_recipe_1  INTEGER REFERENCES recipes(id),
	side_recipe_2  INTEGER REFERENCES recipes(id),
	side_recipe_3  INTEGER REFERENCES recipes(id),
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS shopping_entries (
	id              TEXT PRIMARY KEY,
	ingredient_name TEXT NOT NULL,
	quantity        REAL NOT NULL DEFAULT 0 CHECK(quantity >= 0),
	unit            TEXT NOT NULL DEFAULT '',
	have            INTEGER NOT NULL DEFAULT 0 CHECK(have IN (0, 1)),
	created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS shopping_states (
	key        TEXT PRIMARY KEY,
	have       INTEGER NOT NULL DEFAULT 0 CHECK(have IN (0, 1)),
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe_id
	ON recipe_ingredients(recipe_id);
CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_ingredient_id
	ON recipe_ingredients(ingredient_id);
CREATE INDEX IF NOT EXISTS idx_ingredients_name ON ingredients(name);
CREATE INDEX IF NOT EXISTS idx_shopping_entries_name
	ON shopping_entries(ingredient_name);
CREATE INDEX IF NOT EXISTS idx_meal_selections_main
	ON meal_selections(main_recipe_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
