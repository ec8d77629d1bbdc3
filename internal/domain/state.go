package domain

// Snapshot is an immutable copy of the session state taken after a transition.
type Snapshot struct {
	// Version increases with every committed transition.
	Version uint64

	Phase           Phase
	SessionMinutes  int
	TimeRemaining   int
	IsSessionActive bool
	IsLocked        bool
	BreakRemaining  int
	BreakFinished   bool
	ActiveReelIndex int
	ReelCount       int
	RunID           string
	Progress        float64
}

// Snapshot copies the state at the given version.
func (s *SessionState) Snapshot(version uint64) Snapshot {
	return Snapshot{
		Version:         version,
		Phase:           s.Phase(),
		SessionMinutes:  s.SessionMinutes,
		TimeRemaining:   s.TimeRemaining,
		IsSessionActive: s.IsSessionActive,
		IsLocked:        s.IsLocked,
		BreakRemaining:  s.BreakRemaining,
		BreakFinished:   s.BreakFinished,
		ActiveReelIndex: s.ActiveReelIndex,
		ReelCount:       s.reelCount,
		RunID:           s.RunID,
		Progress:        s.Progress(),
	}
}

// TotalSeconds returns the configured session length in seconds.
func (s Snapshot) TotalSeconds() int {
	return s.SessionMinutes * 60
}

// Event describes one committed transition.
type Event struct {
	Op       string
	From     Phase
	Snapshot Snapshot
}

// PhaseChanged returns true if the transition moved the state machine.
func (e Event) PhaseChanged() bool {
	return e.From != e.Snapshot.Phase
}

// GetPhaseLabel returns a human-readable label for the phase.
func GetPhaseLabel(p Phase) string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseBreathing:
		return "Breathing"
	case PhaseBreakFinished:
		return "Break Finished"
	default:
		return "Unknown"
	}
}
