package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the session view key bindings.
type KeyMap struct {
	MinutesDown  key.Binding
	MinutesUp    key.Binding
	Presets      []key.Binding
	StartPause   key.Binding
	Reset        key.Binding
	Resume       key.Binding
	PreviousReel key.Binding
	NextReel     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the bindings for presetCount quick-select presets.
// Only the first nine presets get a number key.
func DefaultKeyMap(presetCount int) KeyMap {
	if presetCount > 9 {
		presetCount = 9
	}
	presets := make([]key.Binding, presetCount)
	for i := range presets {
		k := string(rune('1' + i))
		presets[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, "preset"))
	}

	return KeyMap{
		MinutesDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "shorter"),
		),
		MinutesUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "longer"),
		),
		Presets: presets,
		StartPause: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space/s", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Resume: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume"),
		),
		PreviousReel: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev reel"),
		),
		NextReel: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next reel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.Reset, k.Resume, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	presets := append([]key.Binding(nil), k.Presets...)
	return [][]key.Binding{
		{k.StartPause, k.Reset, k.Resume},
		append([]key.Binding{k.MinutesDown, k.MinutesUp}, presets...),
		{k.PreviousReel, k.NextReel},
		{k.Help, k.Quit},
	}
}
