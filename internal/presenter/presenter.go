// Package presenter turns a session snapshot into everything the screen shows.
// Project is a pure function: it holds no state and performs no I/O.
package presenter

import (
	"fmt"
	"math"

	"github.com/xvierd/reel-detox/internal/domain"
)

// Tips is the static advice list shown under the controls.
var Tips = []string{
	"Silence notifications before you begin.",
	"Lock your phone once the break overlay appears.",
	"Queue a calming playlist to replace algorithmic feeds.",
}

// Action is what a button press asks the controller to do.
type Action string

const (
	ActionNone   Action = ""
	ActionStart  Action = "start"
	ActionPause  Action = "pause"
	ActionReset  Action = "reset"
	ActionResume Action = "resume"
)

// Button is a labelled control and whether it currently accepts input.
type Button struct {
	Label   string
	Enabled bool
	Action  Action
}

// Preset is one quick-select session length.
type Preset struct {
	Minutes int
	Label   string
	Active  bool
	Enabled bool
}

// Overlay is the lock screen covering the carousel during a break.
type Overlay struct {
	Visible bool
	Title   string
	Message string
	Timer   string
}

// Notice is the limit-reached panel next to the controls.
type Notice struct {
	Visible bool
	Title   string
	Message string
}

// View is the full projection of one snapshot.
type View struct {
	Phase      domain.Phase
	TimerLabel string

	SliderLabel   string
	SliderEnabled bool
	Presets       []Preset

	Primary Button
	Reset   Button
	Resume  Button

	Notice  Notice
	Overlay Overlay

	Reel         domain.Reel
	ReelPosition string
	NavEnabled   bool

	Progress        float64
	ProgressPercent int

	Tips []string
}

// FormatClock renders seconds as MM:SS. Negative values render as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// TimerLabel is the headline status line for the snapshot.
func TimerLabel(s domain.Snapshot) string {
	switch s.Phase {
	case domain.PhaseBreathing:
		return "Break: " + FormatClock(s.BreakRemaining)
	case domain.PhaseBreakFinished:
		return "Break complete. Ready when you are"
	case domain.PhaseRunning:
		return "Time Left: " + FormatClock(s.TimeRemaining)
	default:
		return fmt.Sprintf("Ready for %d minute mindful session", s.SessionMinutes)
	}
}

// Project builds the view for a snapshot against the deck and preset list.
func Project(s domain.Snapshot, deck domain.Deck, presets []int) View {
	locked := s.IsLocked

	v := View{
		Phase:         s.Phase,
		TimerLabel:    TimerLabel(s),
		SliderLabel:   fmt.Sprintf("Session length (%d min)", s.SessionMinutes),
		SliderEnabled: !s.IsSessionActive,
		Reset:         Button{Label: "Reset timer", Enabled: true, Action: ActionReset},
		Reel:          deck.At(s.ActiveReelIndex),
		NavEnabled:    !locked,
		Progress:      s.Progress,
		Tips:          Tips,
	}

	for _, m := range presets {
		v.Presets = append(v.Presets, Preset{
			Minutes: m,
			Label:   fmt.Sprintf("%dm", m),
			Active:  m == s.SessionMinutes,
			Enabled: !s.IsSessionActive,
		})
	}

	switch {
	case s.IsSessionActive:
		v.Primary = Button{Label: "Pause session", Enabled: true, Action: ActionPause}
	case locked && !s.BreakFinished:
		v.Primary = Button{Label: "Locked", Enabled: false, Action: ActionNone}
	default:
		v.Primary = Button{Label: "Start mindful session", Enabled: true, Action: ActionStart}
	}

	if locked {
		v.Notice = Notice{
			Visible: true,
			Title:   "Limit reached",
			Message: fmt.Sprintf("Your %d-minute scroll allowance is used up. Take a %d-second breather away from the feed.",
				s.SessionMinutes, domain.BreakSeconds),
		}
		v.Overlay = Overlay{
			Visible: true,
			Title:   "Break in progress",
			Message: "You hit the limit. Step away from the screen and let your attention recover.",
		}
		if s.BreakFinished {
			v.Overlay.Timer = "Tap resume when ready"
			v.Resume = Button{Label: "Start another focused burst", Enabled: true, Action: ActionResume}
		} else {
			v.Overlay.Timer = FormatClock(s.BreakRemaining)
			v.Resume = Button{Label: "Breathing…", Enabled: false, Action: ActionNone}
		}
	}

	n := len(deck)
	if n > 0 {
		v.ReelPosition = fmt.Sprintf("%d / %d", wrap(s.ActiveReelIndex, n)+1, n)
	}
	v.ProgressPercent = int(math.Round(s.Progress * 100))

	return v
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
