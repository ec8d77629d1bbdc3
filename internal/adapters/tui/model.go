// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/reel-detox/internal/config"
	"github.com/xvierd/reel-detox/internal/domain"
	"github.com/xvierd/reel-detox/internal/ports"
	"github.com/xvierd/reel-detox/internal/presenter"
)

// snapshotMsg carries a controller snapshot into the program.
type snapshotMsg struct {
	snapshot domain.Snapshot
}

// sideBySideWidth is the narrowest terminal the two columns fit next to each other.
const sideBySideWidth = 100

// Model represents the TUI state.
type Model struct {
	snapshot domain.Snapshot
	deck     domain.Deck
	presets  []int
	theme    config.ThemeConfig

	keys     KeyMap
	help     help.Model
	progress progress.Model

	width  int
	height int

	commandCallback func(ports.TimerCommand) error
	presetCallback  func(int) error
}

// NewModel creates a new TUI model.
func NewModel(initial domain.Snapshot, deck domain.Deck, presets []int, theme *config.ThemeConfig) Model {
	resolved := resolveTheme(theme)
	return Model{
		snapshot: initial,
		deck:     deck,
		presets:  presets,
		theme:    resolved,
		keys:     DefaultKeyMap(len(presets)),
		help:     help.New(),
		progress: progress.New(progress.WithGradient(resolved.ProgressStart, resolved.ProgressEnd)),
	}
}

// SetCommandCallback sets the function invoked for user commands.
func (m *Model) SetCommandCallback(cb func(ports.TimerCommand) error) {
	m.commandCallback = cb
}

// SetPresetCallback sets the function invoked for quick-select presets.
func (m *Model) SetPresetCallback(cb func(int) error) {
	m.presetCallback = cb
}

// Snapshot returns the snapshot currently on screen.
func (m Model) Snapshot() domain.Snapshot {
	return m.snapshot
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = clamp(msg.Width/2-8, 20, 60)

	case snapshotMsg:
		// Snapshots can arrive out of order from timer goroutines.
		if msg.snapshot.Version >= m.snapshot.Version {
			m.snapshot = msg.snapshot
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := presenter.Project(m.snapshot, m.deck, m.presets)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.StartPause):
		if !v.Primary.Enabled {
			return m, nil
		}
		switch v.Primary.Action {
		case presenter.ActionPause:
			m.send(ports.CmdPause)
		case presenter.ActionStart:
			m.send(ports.CmdStart)
		}
	case key.Matches(msg, m.keys.Reset):
		m.send(ports.CmdReset)
	case key.Matches(msg, m.keys.Resume):
		if v.Resume.Enabled {
			m.send(ports.CmdResume)
		}
	case key.Matches(msg, m.keys.MinutesDown):
		if v.SliderEnabled {
			m.send(ports.CmdMinutesDown)
		}
	case key.Matches(msg, m.keys.MinutesUp):
		if v.SliderEnabled {
			m.send(ports.CmdMinutesUp)
		}
	case key.Matches(msg, m.keys.PreviousReel):
		if v.NavEnabled {
			m.send(ports.CmdPreviousReel)
		}
	case key.Matches(msg, m.keys.NextReel):
		if v.NavEnabled {
			m.send(ports.CmdNextReel)
		}
	default:
		for i, b := range m.keys.Presets {
			if key.Matches(msg, b) && i < len(v.Presets) && v.Presets[i].Enabled && m.presetCallback != nil {
				// Rejections are reported through the controller log.
				_ = m.presetCallback(i)
			}
		}
	}
	return m, nil
}

func (m Model) send(cmd ports.TimerCommand) {
	if m.commandCallback != nil {
		_ = m.commandCallback(cmd)
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	v := presenter.Project(m.snapshot, m.deck, m.presets)
	controls := m.viewControls(v)
	reel := m.viewReel(v)

	var body string
	if m.width >= sideBySideWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, controls, "    ", reel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, controls, "", reel)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	content := lipgloss.JoinVertical(lipgloss.Center, body, "", helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewControls(v presenter.View) string {
	accent := phaseColor(m.theme, v.Phase)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMuted))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Reel detox", m.theme.IconApp)))
	sections = append(sections, labelStyle.Render(v.TimerLabel))

	switch v.Phase {
	case domain.PhaseRunning:
		sections = append(sections, "", renderClock(presenter.FormatClock(m.snapshot.TimeRemaining), accent, m.width))
	case domain.PhaseBreathing:
		sections = append(sections, "", renderClock(presenter.FormatClock(m.snapshot.BreakRemaining), accent, m.width))
	}

	sections = append(sections, "", m.viewSlider(v))
	sections = append(sections, m.viewPresets(v))
	sections = append(sections, "", m.viewButtons(v))

	if v.Notice.Visible {
		noticeStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.ColorLocked)).
			Padding(0, 1).
			Width(44)
		notice := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(v.Notice.Title),
			v.Notice.Message,
			"",
			m.renderButton(v.Resume, "enter"),
		)
		sections = append(sections, "", noticeStyle.Render(notice))
	}

	sections = append(sections, "", m.progress.ViewAs(v.Progress))

	tips := make([]string, len(v.Tips))
	for i, tip := range v.Tips {
		tips[i] = mutedStyle.Render("• " + tip)
	}
	sections = append(sections, "", lipgloss.JoinVertical(lipgloss.Left, tips...))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewSlider(v presenter.View) string {
	const track = 30
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTitle))
	if !v.SliderEnabled {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMuted))
	}

	pos := (m.snapshot.SessionMinutes - domain.MinSessionMinutes) * (track - 1) /
		(domain.MaxSessionMinutes - domain.MinSessionMinutes)
	bar := strings.Repeat("─", pos) + "●" + strings.Repeat("─", track-1-pos)
	return lipgloss.JoinVertical(lipgloss.Left, v.SliderLabel, style.Render(bar))
}

func (m Model) viewPresets(v presenter.View) string {
	parts := make([]string, len(v.Presets))
	for i, p := range v.Presets {
		style := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case !p.Enabled:
			style = style.Foreground(lipgloss.Color(m.theme.ColorMuted))
		case p.Active:
			style = style.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(m.theme.ColorTitle))
		}
		parts[i] = style.Render(fmt.Sprintf("%d·%s", i+1, p.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewButtons(v presenter.View) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(v.Primary, "space"),
		"  ",
		m.renderButton(v.Reset, "r"),
	)
}

func (m Model) renderButton(b presenter.Button, hint string) string {
	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	if b.Enabled {
		style = style.Bold(true).BorderForeground(phaseColor(m.theme, m.snapshot.Phase))
		return style.Render(fmt.Sprintf("%s [%s]", b.Label, hint))
	}
	style = style.Foreground(lipgloss.Color(m.theme.ColorMuted)).BorderForeground(lipgloss.Color(m.theme.ColorMuted))
	return style.Render(b.Label)
}

func (m Model) viewReel(v presenter.View) string {
	from, to := reelColors(m.theme, v.Reel)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(to).
		Padding(1, 2).
		Width(38).
		Height(12)

	if v.Overlay.Visible {
		lockColor := phaseColor(m.theme, v.Phase)
		var timer string
		if v.Phase == domain.PhaseBreathing {
			timer = renderClock(v.Overlay.Timer, lockColor, m.width)
		} else {
			timer = lipgloss.NewStyle().Bold(true).Foreground(lockColor).Render(v.Overlay.Timer)
		}
		lock := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s %s", m.theme.IconLocked, v.Overlay.Title)),
			"",
			lipgloss.NewStyle().Width(32).Align(lipgloss.Center).Render(v.Overlay.Message),
			"",
			timer,
		)
		return cardStyle.BorderForeground(lockColor).Align(lipgloss.Center).Render(lock)
	}

	badge := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(from).Padding(0, 1).
		Render(fmt.Sprintf("%s Mindful reel", m.theme.IconReel))
	title := lipgloss.NewStyle().Bold(true).Foreground(from).Render(v.Reel.Title)
	prompt := lipgloss.NewStyle().Width(34).Render(v.Reel.Prompt)
	anchor := lipgloss.NewStyle().Italic(true).Foreground(to).Render(v.Reel.Anchor)
	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, badge, "", title, "", prompt, "", anchor))

	navStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	nav := navStyle.Render(fmt.Sprintf("‹ k   %s   j ›", v.ReelPosition))
	return lipgloss.JoinVertical(lipgloss.Center, card, nav)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
