package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"log_level":       "debug",
		"profiles_path":   "/tmp/p.yaml",
		"default_length":  20,
		"default_counter": 3,
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"default_length": 12,
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"gen", "-c", full})

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/tmp/p.yaml", cfg.ProfilesPath)
		assert.Equal(t, uint8(20), cfg.DefaultLength)
		assert.Equal(t, uint64(3), cfg.DefaultCounter)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"--config=" + partial})

		assert.Equal(t, uint8(12), cfg.DefaultLength)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, uint64(1), cfg.DefaultCounter)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{LogLevel: "error", DefaultLength: 42}
		parseJson(cfg, []string{"gen"})

		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, uint8(42), cfg.DefaultLength)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"--config", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
