package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	profiles := filepath.Join(dir, "profiles.yaml")

	assert.Equal(t, 0, run([]string{"--profiles", profiles, "version"}))
	assert.Equal(t, 1, run([]string{"--profiles", profiles, "gen", "-s", "a", "-l", "b", "-L", "3", "-p", "x"}))
	assert.Equal(t, 1, run([]string{"--profiles", profiles, "nope"}))
}

func TestRun_BadConfigFile(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	assert.Equal(t, 1, run([]string{"-c", bad, "version"}))
}
