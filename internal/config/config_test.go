package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hbjs97/dirprofile/internal/config"
	"github.com/hbjs97/dirprofile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := config.Load(filepath.Join(home, "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "iTerm2", "DynamicProfiles", "dirprofile.json"), cfg.StorePath)
	assert.Equal(t, filepath.Join(home, ".config", "dirprofile", "presets.json"), cfg.AssignmentsPath)
	assert.Equal(t, "/Applications/iTerm.app/Contents/Resources/ColorPresets.plist", cfg.CatalogPath)
	assert.Equal(t, filepath.Join(home, "Library", "Preferences", "com.googlecode.iterm2.plist"), cfg.PreferencesPath)
	assert.Equal(t, 10*time.Second, cfg.CommandTimeout())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_ValidTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := testutil.TempConfigFile(t, `store_path = "~/profiles/dirprofile.json"
assignments_path = "/var/tmp/presets.json"
catalog_path = "~/ColorPresets.plist"
command_timeout_seconds = 3
log_level = "DEBUG"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "profiles", "dirprofile.json"), cfg.StorePath)
	assert.Equal(t, "/var/tmp/presets.json", cfg.AssignmentsPath)
	assert.Equal(t, filepath.Join(home, "ColorPresets.plist"), cfg.CatalogPath)
	assert.Equal(t, 3*time.Second, cfg.CommandTimeout())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfig))
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative timeout", `command_timeout_seconds = -1`},
		{"unknown log level", `log_level = "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrConfig))
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, ".config", "dirprofile", "config.toml")

	cfg := &config.Config{
		StorePath:             "/tmp/store.json",
		AssignmentsPath:       "/tmp/presets.json",
		CatalogPath:           "/tmp/ColorPresets.plist",
		PreferencesPath:       "/tmp/prefs.plist",
		CommandTimeoutSeconds: 7,
		LogLevel:              "info",
	}
	require.NoError(t, config.Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "/home/u/.config/dirprofile/config.toml", config.DefaultPath("/home/u"))
}
