package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DatabaseConfig holds settings for the local SQLite store.
type DatabaseConfig struct {
	// Path is the location of the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`
}

// UnitsConfig holds user overrides for the unit-conversion table.
type UnitsConfig struct {
	// Conversions maps an ingredient name to unit-name → factor entries.
	// Entries are merged over the built-in table at startup, replacing
	// the built-in entry for the same ingredient wholesale.
	Conversions map[string]map[string]float64 `mapstructure:"conversions" yaml:"conversions"`
}

// AppConfig is the top-level application configuration. The desktop
// shell embedding this core loads it at startup to open the store and
// build the conversion table; nothing inside the core reads it again.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Units    UnitsConfig    `mapstructure:"units" yaml:"units"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/mealplanner/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "mealplanner", "config.yaml")
}

// DefaultDatabasePath returns the default path for the SQLite database,
// located at ~/.local/share/mealplanner/mealplanner.db.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "mealplanner.db")
	}
	return filepath.Join(home, ".local", "share", "mealplanner", "mealplanner.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Path: DefaultDatabasePath(),
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("database.path", DefaultDatabasePath())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("units", cfg.Units)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
