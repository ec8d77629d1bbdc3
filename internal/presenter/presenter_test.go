package presenter

import (
	"strings"
	"testing"

	"github.com/xvierd/reel-detox/internal/domain"
)

var presets = []int{3, 5, 10, 15}

// snapshotIn drives a fresh 5-minute state into the requested phase.
func snapshotIn(t *testing.T, phase domain.Phase) domain.Snapshot {
	t.Helper()
	s, err := domain.NewSessionState(5, 5)
	if err != nil {
		t.Fatalf("NewSessionState() error = %v", err)
	}
	if phase == domain.PhaseIdle {
		return s.Snapshot(1)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		s.TickSession()
	}
	if phase == domain.PhaseRunning {
		return s.Snapshot(1)
	}
	for s.Phase() == domain.PhaseRunning {
		s.TickSession()
	}
	for i := 0; i < 15; i++ {
		s.TickBreak()
	}
	if phase == domain.PhaseBreathing {
		return s.Snapshot(1)
	}
	for s.Phase() == domain.PhaseBreathing {
		s.TickBreak()
	}
	return s.Snapshot(1)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-5, "00:00"},
		{9, "00:09"},
		{60, "01:00"},
		{290, "04:50"},
		{1800, "30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestTimerLabel(t *testing.T) {
	tests := []struct {
		phase domain.Phase
		want  string
	}{
		{domain.PhaseIdle, "Ready for 5 minute mindful session"},
		{domain.PhaseRunning, "Time Left: 04:50"},
		{domain.PhaseBreathing, "Break: 00:45"},
		{domain.PhaseBreakFinished, "Break complete. Ready when you are"},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			if got := TimerLabel(snapshotIn(t, tt.phase)); got != tt.want {
				t.Errorf("TimerLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProject_Controls(t *testing.T) {
	tests := []struct {
		phase         domain.Phase
		primary       Button
		sliderEnabled bool
		navEnabled    bool
		overlay       bool
	}{
		{
			phase:         domain.PhaseIdle,
			primary:       Button{Label: "Start mindful session", Enabled: true, Action: ActionStart},
			sliderEnabled: true,
			navEnabled:    true,
		},
		{
			phase:      domain.PhaseRunning,
			primary:    Button{Label: "Pause session", Enabled: true, Action: ActionPause},
			navEnabled: true,
		},
		{
			phase:         domain.PhaseBreathing,
			primary:       Button{Label: "Locked", Enabled: false, Action: ActionNone},
			sliderEnabled: true,
			overlay:       true,
		},
		{
			phase:         domain.PhaseBreakFinished,
			primary:       Button{Label: "Start mindful session", Enabled: true, Action: ActionStart},
			sliderEnabled: true,
			overlay:       true,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			v := Project(snapshotIn(t, tt.phase), domain.DefaultDeck(), presets)

			if v.Primary != tt.primary {
				t.Errorf("Primary = %+v, want %+v", v.Primary, tt.primary)
			}
			if v.SliderEnabled != tt.sliderEnabled {
				t.Errorf("SliderEnabled = %v, want %v", v.SliderEnabled, tt.sliderEnabled)
			}
			if v.NavEnabled != tt.navEnabled {
				t.Errorf("NavEnabled = %v, want %v", v.NavEnabled, tt.navEnabled)
			}
			if v.Overlay.Visible != tt.overlay || v.Notice.Visible != tt.overlay {
				t.Errorf("Overlay.Visible = %v, Notice.Visible = %v, want %v", v.Overlay.Visible, v.Notice.Visible, tt.overlay)
			}
			if v.Reset.Action != ActionReset || !v.Reset.Enabled {
				t.Errorf("Reset = %+v, want enabled reset", v.Reset)
			}
			if len(v.Presets) != len(presets) {
				t.Fatalf("len(Presets) = %d, want %d", len(v.Presets), len(presets))
			}
			for _, p := range v.Presets {
				if p.Enabled != tt.sliderEnabled {
					t.Errorf("preset %s Enabled = %v, want %v", p.Label, p.Enabled, tt.sliderEnabled)
				}
			}
		})
	}
}

func TestProject_Overlay(t *testing.T) {
	deck := domain.DefaultDeck()

	breathing := Project(snapshotIn(t, domain.PhaseBreathing), deck, presets)
	if breathing.Overlay.Timer != "00:45" {
		t.Errorf("Overlay.Timer = %q, want %q", breathing.Overlay.Timer, "00:45")
	}
	if breathing.Overlay.Title != "Break in progress" {
		t.Errorf("Overlay.Title = %q, want %q", breathing.Overlay.Title, "Break in progress")
	}
	if breathing.Resume.Enabled || breathing.Resume.Label != "Breathing…" {
		t.Errorf("Resume = %+v, want disabled Breathing…", breathing.Resume)
	}
	wantNotice := "Your 5-minute scroll allowance is used up. Take a 60-second breather"
	if !strings.HasPrefix(breathing.Notice.Message, wantNotice) {
		t.Errorf("Notice.Message = %q, want prefix %q", breathing.Notice.Message, wantNotice)
	}

	finished := Project(snapshotIn(t, domain.PhaseBreakFinished), deck, presets)
	if finished.Overlay.Timer != "Tap resume when ready" {
		t.Errorf("Overlay.Timer = %q, want %q", finished.Overlay.Timer, "Tap resume when ready")
	}
	want := Button{Label: "Start another focused burst", Enabled: true, Action: ActionResume}
	if finished.Resume != want {
		t.Errorf("Resume = %+v, want %+v", finished.Resume, want)
	}

	idle := Project(snapshotIn(t, domain.PhaseIdle), deck, presets)
	if idle.Overlay.Visible || idle.Resume.Label != "" {
		t.Errorf("idle view shows overlay %+v / resume %+v", idle.Overlay, idle.Resume)
	}
}

func TestProject_ReelAndProgress(t *testing.T) {
	deck := domain.DefaultDeck()

	s := snapshotIn(t, domain.PhaseIdle)
	s.ActiveReelIndex = 2
	v := Project(s, deck, presets)
	if v.Reel.ID != "breathe" {
		t.Errorf("Reel.ID = %q, want %q", v.Reel.ID, "breathe")
	}
	if v.ReelPosition != "3 / 5" {
		t.Errorf("ReelPosition = %q, want %q", v.ReelPosition, "3 / 5")
	}
	if v.ProgressPercent != 0 {
		t.Errorf("ProgressPercent = %d, want 0", v.ProgressPercent)
	}
	if v.SliderLabel != "Session length (5 min)" {
		t.Errorf("SliderLabel = %q", v.SliderLabel)
	}
	for _, p := range v.Presets {
		if p.Active != (p.Minutes == 5) {
			t.Errorf("preset %s Active = %v", p.Label, p.Active)
		}
	}

	running := Project(snapshotIn(t, domain.PhaseRunning), deck, presets)
	if running.ProgressPercent != 3 {
		t.Errorf("ProgressPercent = %d, want 3", running.ProgressPercent)
	}

	locked := Project(snapshotIn(t, domain.PhaseBreathing), deck, presets)
	if locked.ProgressPercent != 100 {
		t.Errorf("ProgressPercent = %d, want 100", locked.ProgressPercent)
	}

	empty := Project(s, nil, presets)
	if empty.ReelPosition != "" || empty.Reel.ID != "" {
		t.Errorf("empty deck view = %q / %+v", empty.ReelPosition, empty.Reel)
	}
	if len(v.Tips) != 3 {
		t.Errorf("len(Tips) = %d, want 3", len(v.Tips))
	}
}
