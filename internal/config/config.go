// Package config provides configuration management for reel-detox.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/reel-detox/internal/domain"
)

// DirName is the data directory under the user's home.
const DirName = ".reel-detox"

// Config holds all configuration for the reel-detox application.
// Session state is never stored here.
type Config struct {
	Session       SessionConfig      `mapstructure:"session"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// SessionConfig holds the starting session length and quick-select presets.
type SessionConfig struct {
	DefaultMinutes int   `mapstructure:"default_minutes"`
	Presets        []int `mapstructure:"presets"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LoggingConfig controls the log sink. An empty File disables logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorTitle    string `mapstructure:"color_title"`
	ColorRunning  string `mapstructure:"color_running"`
	ColorLocked   string `mapstructure:"color_locked"`
	ColorFinished string `mapstructure:"color_finished"`
	ColorIdle     string `mapstructure:"color_idle"`
	ColorMuted    string `mapstructure:"color_muted"`
	ColorHelp     string `mapstructure:"color_help"`
	ProgressStart string `mapstructure:"progress_start"`
	ProgressEnd   string `mapstructure:"progress_end"`
	IconApp       string `mapstructure:"icon_app"`
	IconLocked    string `mapstructure:"icon_locked"`
	IconReel      string `mapstructure:"icon_reel"`
	GradientReels bool   `mapstructure:"gradient_reels"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:    "#8A5DFF",
		ColorRunning:  "#00CDAC",
		ColorLocked:   "#FF5E62",
		ColorFinished: "#FF9966",
		ColorIdle:     "#A0AEC0",
		ColorMuted:    "#6B7280",
		ColorHelp:     "#95A5A6",
		ProgressStart: "#4937FF",
		ProgressEnd:   "#FCA2FF",
		IconApp:       "🌿",
		IconLocked:    "🔒",
		IconReel:      "🎞",
		GradientReels: true,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			DefaultMinutes: domain.DefaultSessionMinutes,
			Presets:        []int{3, 5, 10, 15},
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  defaultLogFile(),
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults; it is not created.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	file, err := expandHome(cfg.Logging.File)
	if err != nil {
		return nil, err
	}
	cfg.Logging.File = file

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the session settings against the allowed range.
func (c *Config) Validate() error {
	if !inRange(c.Session.DefaultMinutes) {
		return fmt.Errorf("session.default_minutes %d: %w", c.Session.DefaultMinutes, domain.ErrMinutesOutOfRange)
	}
	if len(c.Session.Presets) == 0 {
		return errors.New("session.presets must not be empty")
	}
	for _, p := range c.Session.Presets {
		if !inRange(p) {
			return fmt.Errorf("session.presets entry %d: %w", p, domain.ErrMinutesOutOfRange)
		}
	}
	if _, ok := logLevels[strings.ToLower(c.Logging.Level)]; !ok {
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

var logLevels = map[string]struct{}{
	"": {}, "trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "disabled": {},
}

func inRange(m int) bool {
	return m >= domain.MinSessionMinutes && m <= domain.MaxSessionMinutes
}

// Save writes the configuration to path, or the default location when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.Set("session.default_minutes", cfg.Session.DefaultMinutes)
	v.Set("session.presets", cfg.Session.Presets)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.file", cfg.Logging.File)
	for key, value := range themeValues(cfg.Theme) {
		v.Set("theme."+key, value)
	}

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetDataDir returns the reel-detox directory under the user's home.
func GetDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// defaultLogFile returns the log file under the data directory, or "" when
// the home directory is unknown, which turns file logging off.
func defaultLogFile() string {
	dir, err := GetDataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "reel-detox.log")
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(p, "~")), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("session.default_minutes", defaults.Session.DefaultMinutes)
	v.SetDefault("session.presets", defaults.Session.Presets)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("notifications.sound", defaults.Notifications.Sound)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	for key, value := range themeValues(defaults.Theme) {
		v.SetDefault("theme."+key, value)
	}
}

func themeValues(t ThemeConfig) map[string]any {
	return map[string]any{
		"color_title":    t.ColorTitle,
		"color_running":  t.ColorRunning,
		"color_locked":   t.ColorLocked,
		"color_finished": t.ColorFinished,
		"color_idle":     t.ColorIdle,
		"color_muted":    t.ColorMuted,
		"color_help":     t.ColorHelp,
		"progress_start": t.ProgressStart,
		"progress_end":   t.ProgressEnd,
		"icon_app":       t.IconApp,
		"icon_locked":    t.IconLocked,
		"icon_reel":      t.IconReel,
		"gradient_reels": t.GradientReels,
	}
}
