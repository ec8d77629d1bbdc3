package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/reel-detox/internal/domain"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSessionMinutes, cfg.Session.DefaultMinutes)
	assert.Equal(t, []int{3, 5, 10, 15}, cfg.Session.Presets)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, DirName, "reel-detox.log"), cfg.Logging.File)
	assert.Equal(t, DefaultThemeConfig(), cfg.Theme)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Load must not create the config file")
}

func TestDefaultConfig_LogFileUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, DirName, "reel-detox.log"), cfg.Logging.File)
	assert.True(t, filepath.IsAbs(cfg.Logging.File), "default log file must not depend on the working directory")
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[session]
default_minutes = 12
presets = [1, 2, 30]

[notifications]
enabled = false

[logging]
level = "debug"
file = "/tmp/reel.log"

[theme]
color_title = "#000000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Session.DefaultMinutes)
	assert.Equal(t, []int{1, 2, 30}, cfg.Session.Presets)
	assert.False(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.Notifications.Sound)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/reel.log", cfg.Logging.File)
	assert.Equal(t, "#000000", cfg.Theme.ColorTitle)
	assert.Equal(t, DefaultThemeConfig().ColorLocked, cfg.Theme.ColorLocked)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "minutes too high", content: "[session]\ndefault_minutes = 31\n"},
		{name: "preset zero", content: "[session]\npresets = [0, 5]\n"},
		{name: "bad level", content: "[logging]\nlevel = \"loud\"\n"},
		{name: "not toml", content: "[session\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Session.DefaultMinutes = 7
	cfg.Notifications.Sound = false
	cfg.Theme.IconApp = "*"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Session.DefaultMinutes)
	assert.False(t, loaded.Notifications.Sound)
	assert.Equal(t, "*", loaded.Theme.IconApp)
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".reel-detox", "config.toml"), got)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Session.Presets = nil
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Session.DefaultMinutes = 0
	assert.ErrorIs(t, cfg.Validate(), domain.ErrMinutesOutOfRange)
}
