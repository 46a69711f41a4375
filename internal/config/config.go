// Package config resolves tool settings from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries the tool settings. Configuration affects tooling
// only; parse semantics never depend on it.
type Config struct {
	// ScriptsDir is the directory holding .bts scripts.
	ScriptsDir string
	// DBPath is the catalog database location.
	DBPath string
	// NoColor disables styled output.
	NoColor bool
}

// Load resolves the configuration: built-in defaults, then a .env file
// if one exists, then the process environment. godotenv never
// overrides variables already set in the real environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{ScriptsDir: "bts"}
	if dir := os.Getenv("BTS_DIR"); dir != "" {
		cfg.ScriptsDir = dir
	}
	cfg.DBPath = filepath.Join(cfg.ScriptsDir, "bts.db")
	if db := os.Getenv("BTS_DB"); db != "" {
		cfg.DBPath = db
	}
	cfg.NoColor = os.Getenv("BTS_NO_COLOR") != ""
	return cfg
}
