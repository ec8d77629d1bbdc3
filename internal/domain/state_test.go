package domain

import "testing"

func TestSessionState_Snapshot(t *testing.T) {
	s, _ := NewSessionState(2, 5)
	_ = s.Start()
	s.TickSession()

	snap := s.Snapshot(7)
	if snap.Version != 7 {
		t.Errorf("Version = %d, want 7", snap.Version)
	}
	if snap.Phase != PhaseRunning {
		t.Errorf("Phase = %v, want running", snap.Phase)
	}
	if snap.TimeRemaining != 119 {
		t.Errorf("TimeRemaining = %d, want 119", snap.TimeRemaining)
	}
	if snap.ReelCount != 5 {
		t.Errorf("ReelCount = %d, want 5", snap.ReelCount)
	}
	if snap.TotalSeconds() != 120 {
		t.Errorf("TotalSeconds() = %d, want 120", snap.TotalSeconds())
	}
	if snap.RunID != s.RunID {
		t.Errorf("RunID = %q, want %q", snap.RunID, s.RunID)
	}

	s.TickSession()
	if snap.TimeRemaining != 119 {
		t.Error("snapshot should not follow later state changes")
	}
}

func TestEvent_PhaseChanged(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"same phase", Event{From: PhaseRunning, Snapshot: Snapshot{Phase: PhaseRunning}}, false},
		{"lock", Event{From: PhaseRunning, Snapshot: Snapshot{Phase: PhaseBreathing}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.PhaseChanged(); got != tt.want {
				t.Errorf("PhaseChanged() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetPhaseLabel(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "Idle"},
		{PhaseRunning, "Running"},
		{PhaseBreathing, "Breathing"},
		{PhaseBreakFinished, "Break Finished"},
		{"unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			if got := GetPhaseLabel(tt.phase); got != tt.want {
				t.Errorf("GetPhaseLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}
