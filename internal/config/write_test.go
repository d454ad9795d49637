package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "poker-odds.hcl")

	cfg := Default()
	cfg.Equity.Strategy = StrategyParallel
	cfg.Equity.Workers = 3
	cfg.Log.Level = "debug"
	require.NoError(t, cfg.Save(path, false))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSaveRefusesOverwrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "poker-odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	assert.ErrorIs(t, Default().Save(path, false), ErrExists)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	require.NoError(t, Default().Save(path, true))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestSaveRejectsInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "poker-odds.hcl")
	cfg := Default()
	cfg.Equity.Opponents = 0
	assert.Error(t, cfg.Save(path, false))
	assert.NoFileExists(t, path)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, Default().Save(filepath.Join(dir, "poker-odds.hcl"), false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEncode(t *testing.T) {
	t.Parallel()
	out := string(Default().Encode())
	assert.Contains(t, out, "equity {")
	assert.Contains(t, out, `strategy  = "auto"`)
	assert.Contains(t, out, "log {")
}
