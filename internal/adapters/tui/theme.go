package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/reel-detox/internal/config"
	"github.com/xvierd/reel-detox/internal/domain"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// phaseColor returns the accent colour for a phase.
func phaseColor(theme config.ThemeConfig, p domain.Phase) lipgloss.Color {
	switch p {
	case domain.PhaseRunning:
		return lipgloss.Color(theme.ColorRunning)
	case domain.PhaseBreathing:
		return lipgloss.Color(theme.ColorLocked)
	case domain.PhaseBreakFinished:
		return lipgloss.Color(theme.ColorFinished)
	default:
		return lipgloss.Color(theme.ColorIdle)
	}
}

// reelColors returns the two colours a reel card is drawn with.
func reelColors(theme config.ThemeConfig, r domain.Reel) (lipgloss.Color, lipgloss.Color) {
	from, to := r.GradientEnds()
	if !theme.GradientReels || from == "" {
		return lipgloss.Color(theme.ColorTitle), lipgloss.Color(theme.ColorMuted)
	}
	return lipgloss.Color(from), lipgloss.Color(to)
}
