package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Hooks.Validate)
	assert.True(t, cfg.Hooks.Timestamps)
	assert.False(t, cfg.Hooks.LogCalls)
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Output.Format = "yaml"
	cfg.Hooks.Validate = false
	cfg.Seed = []string{"First Message"}

	require.NoError(t, cfg.Save(configPath))

	loaded, path, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, path)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: WARN\n"), 0644))

	cfg, _, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Hooks.Validate)
	assert.True(t, cfg.Hooks.Timestamps)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"bad output format", "output:\n  format: csv\n"},
		{"not yaml", "log: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.body), 0644))

			_, _, err := LoadFromPath(configPath)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromMissingPath(t *testing.T) {
	_, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFindConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv(EnvConfigPath, "")

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	t.Run("xdg config is found", func(t *testing.T) {
		xdgPath := filepath.Join(tmpDir, "xdg", ConfigDirName, "config.yaml")
		require.NoError(t, DefaultConfig().Save(xdgPath))
		assert.Equal(t, xdgPath, FindConfigPath())
	})

	t.Run("working directory wins over xdg", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Save(filepath.Join(tmpDir, ConfigFileName)))
		found := FindConfigPath()
		assert.Equal(t, ConfigFileName, filepath.Base(found))
	})

	t.Run("env path wins when it exists", func(t *testing.T) {
		explicit := filepath.Join(tmpDir, "explicit.yaml")
		require.NoError(t, DefaultConfig().Save(explicit))
		t.Setenv(EnvConfigPath, explicit)
		assert.Equal(t, explicit, FindConfigPath())
	})

	t.Run("missing env path falls back", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/nonexistent/path.yaml")
		assert.Equal(t, ConfigFileName, filepath.Base(FindConfigPath()))
	})
}

func TestLoadOrDefault(t *testing.T) {
	explicit := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Seed = []string{"hello"}
	require.NoError(t, cfg.Save(explicit))

	loaded, path, err := LoadOrDefault(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.Equal(t, []string{"hello"}, loaded.Seed)
}

func TestSummary(t *testing.T) {
	summary := DefaultConfig().Summary()
	assert.Contains(t, summary, "Log: info/text")
	assert.Contains(t, summary, "validate=true")
}
