package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with HOME and the XDG config
// dir pointing at it, so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))
	for _, key := range []string{"LOGTALLY_FORMAT", "LOGTALLY_QUIET", "LOGTALLY_VERBOSE", "LOGTALLY_LEVEL", "LOGTALLY_OUTPUT"} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "plain", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Defaults.Level)
	assert.Empty(t, cfg.Defaults.Output)
	assert.Empty(t, cfg.Defaults.Exclude)
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		isolate(t)

		cfg, err := Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "plain", cfg.Format)
		assert.Empty(t, ConfigFile())
	})

	t.Run("loads config from working directory", func(t *testing.T) {
		dir := isolate(t)
		content := `
format: json
defaults:
  level: error
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".logtally.yaml"), []byte(content), 0644))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "error", cfg.Defaults.Level)
		assert.Equal(t, filepath.Join(dir, ".logtally.yaml"), filepath.Clean(ConfigFile()))
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "logtally.yaml"), []byte("format: json\n"), 0644))
		t.Setenv("LOGTALLY_FORMAT", "table")
		t.Setenv("LOGTALLY_QUIET", "1")
		t.Setenv("LOGTALLY_VERBOSE", "true")
		t.Setenv("LOGTALLY_LEVEL", "warning")
		t.Setenv("LOGTALLY_OUTPUT", "summary.txt")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "table", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "warning", cfg.Defaults.Level)
		assert.Equal(t, "summary.txt", cfg.Defaults.Output)
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".logtally.yaml"), []byte("invalid: yaml: content: ["), 0644))

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("returns error for non-existent file", func(t *testing.T) {
		cfg, err := LoadFromFile("/nonexistent/path/config.yaml")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parses all config fields", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
format: table
quiet: true
verbose: true
defaults:
  level: debug
  output: /tmp/summary.json
  pattern: "worker"
  exclude:
    - heartbeat
    - keepalive
`
		path := filepath.Join(tmpDir, "logtally.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "table", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "debug", cfg.Defaults.Level)
		assert.Equal(t, "/tmp/summary.json", cfg.Defaults.Output)
		assert.Equal(t, "worker", cfg.Defaults.Pattern)
		assert.Equal(t, []string{"heartbeat", "keepalive"}, cfg.Defaults.Exclude)
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logtally.yaml")
		require.NoError(t, os.WriteFile(path, []byte("quiet: true\n"), 0644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "plain", cfg.Format)
		assert.True(t, cfg.Quiet)
	})
}
