package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BTS_DIR", "")
	t.Setenv("BTS_DB", "")
	t.Setenv("BTS_NO_COLOR", "")

	cfg := Load()

	assert.Equal(t, "bts", cfg.ScriptsDir)
	assert.Equal(t, filepath.Join("bts", "bts.db"), cfg.DBPath)
	assert.False(t, cfg.NoColor)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BTS_DIR", "scenarios")
	t.Setenv("BTS_DB", "")
	t.Setenv("BTS_NO_COLOR", "1")

	cfg := Load()

	assert.Equal(t, "scenarios", cfg.ScriptsDir)
	// The database default follows the scripts directory.
	assert.Equal(t, filepath.Join("scenarios", "bts.db"), cfg.DBPath)
	assert.True(t, cfg.NoColor)
}

func TestLoadExplicitDBPath(t *testing.T) {
	t.Setenv("BTS_DIR", "scenarios")
	t.Setenv("BTS_DB", "/tmp/elsewhere.db")

	cfg := Load()

	assert.Equal(t, "/tmp/elsewhere.db", cfg.DBPath)
}
