package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"MAZE_CONFIG", "MAZE_WIDTH", "MAZE_HEIGHT", "MAZE_SEED",
		"MAZE_CELL_SIZE", "MAZE_ENCLOSE", "MAZE_FORMAT", "MAZE_OUTPUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Keep godotenv away from any .env in the package directory.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 30\nheight: 10\nseed: 99\nenclose: true\nformat: yaml\n"), 0o644))

	t.Setenv("MAZE_CONFIG", path)
	t.Setenv("MAZE_HEIGHT", "12")
	t.Setenv("MAZE_CELL_SIZE", "3.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 3.5, cfg.CellSize)
	assert.True(t, cfg.Enclose)
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_WIDTH", "wide")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateFormat(t *testing.T) {
	cfg := Default()
	cfg.Format = "png"

	err := cfg.Validate()
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
