package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "absdom.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
domain = "parity"
widening_threshold = 7
`)

	cfg, meta, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "parity", cfg.Domain)
	assert.Equal(t, uint(7), cfg.WideningThreshold)
	assert.Equal(t, "values", cfg.Task, "keys absent from the file keep their default")

	assert.True(t, meta.IsDefined("domain"))
	assert.False(t, meta.IsDefined("task"))
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `dommain = "sign"`)

	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dommain")
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
