// Package domain contains the session state machine for reel-detox.
// Every transition is a plain method on SessionState so the rules can be
// exercised without timers or a terminal.
package domain

import (
	"errors"
	"time"
)

const (
	MinSessionMinutes     = 1
	MaxSessionMinutes     = 30
	DefaultSessionMinutes = 5

	// BreakSeconds is the length of the forced break once the allowance is used up.
	BreakSeconds = 60

	// TickInterval drives both the session countdown and the break countdown.
	TickInterval = time.Second

	// RotationInterval is how often the carousel advances on its own.
	RotationInterval = 10 * time.Second
)

// Transition errors. A rejected transition leaves the state untouched.
var (
	ErrSessionActive     = errors.New("session already active")
	ErrLocked            = errors.New("session is locked for a break")
	ErrNotRunning        = errors.New("no running session")
	ErrBreakNotFinished  = errors.New("break not finished")
	ErrMinutesOutOfRange = errors.New("session length must be between 1 and 30 minutes")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrEmptyDeck         = errors.New("reel deck is empty")
)

// Phase is the state machine position derived from the session flags.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseRunning       Phase = "running"
	PhaseBreathing     Phase = "breathing"
	PhaseBreakFinished Phase = "break_finished"
)

// SessionState is the single mutable state of a reel-detox run.
type SessionState struct {
	SessionMinutes  int
	TimeRemaining   int // seconds
	IsSessionActive bool
	IsLocked        bool
	BreakRemaining  int // seconds
	BreakFinished   bool
	ActiveReelIndex int

	// RunID identifies the current countdown for logging. It changes on every start.
	RunID string

	reelCount int
}

// NewSessionState creates an idle state for the given session length and deck size.
func NewSessionState(minutes, reelCount int) (*SessionState, error) {
	if !validMinutes(minutes) {
		return nil, ErrMinutesOutOfRange
	}
	if reelCount <= 0 {
		return nil, ErrEmptyDeck
	}
	return &SessionState{
		SessionMinutes: minutes,
		TimeRemaining:  minutes * 60,
		BreakRemaining: BreakSeconds,
		reelCount:      reelCount,
	}, nil
}

func validMinutes(m int) bool {
	return m >= MinSessionMinutes && m <= MaxSessionMinutes
}

// Phase returns the current state machine position.
func (s *SessionState) Phase() Phase {
	switch {
	case s.IsLocked && s.BreakFinished:
		return PhaseBreakFinished
	case s.IsLocked:
		return PhaseBreathing
	case s.IsSessionActive:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// TotalSeconds returns the configured session length in seconds.
func (s *SessionState) TotalSeconds() int {
	return s.SessionMinutes * 60
}

// ReelCount returns the size of the deck the rotator wraps around.
func (s *SessionState) ReelCount() int {
	return s.reelCount
}

// guardIdle rejects edits to the session length outside the idle phase.
func (s *SessionState) guardIdle() error {
	switch s.Phase() {
	case PhaseRunning:
		return ErrSessionActive
	case PhaseBreathing, PhaseBreakFinished:
		return ErrLocked
	}
	return nil
}

// SetMinutes changes the session length and recomputes the remaining time.
func (s *SessionState) SetMinutes(m int) error {
	if err := s.guardIdle(); err != nil {
		return err
	}
	if !validMinutes(m) {
		return ErrMinutesOutOfRange
	}
	s.SessionMinutes = m
	s.TimeRemaining = s.TotalSeconds()
	return nil
}

// AdjustMinutes moves the session length by delta, clamped to the allowed range.
func (s *SessionState) AdjustMinutes(delta int) error {
	m := s.SessionMinutes + delta
	if m < MinSessionMinutes {
		m = MinSessionMinutes
	}
	if m > MaxSessionMinutes {
		m = MaxSessionMinutes
	}
	return s.SetMinutes(m)
}

// Start begins a fresh countdown. Pausing keeps the remaining time on screen,
// but a later Start always restarts from the full session length.
func (s *SessionState) Start() error {
	switch s.Phase() {
	case PhaseRunning:
		return ErrSessionActive
	case PhaseBreathing:
		return ErrLocked
	}

	s.TimeRemaining = s.TotalSeconds()
	s.ActiveReelIndex = 0
	s.clearLock()
	s.IsSessionActive = true
	s.RunID = newRunID()
	return nil
}

// Pause stops the countdown and keeps the remaining time.
func (s *SessionState) Pause() error {
	if s.Phase() != PhaseRunning {
		return ErrNotRunning
	}
	s.IsSessionActive = false
	return nil
}

// Resume starts another session once the break has run out.
func (s *SessionState) Resume() error {
	if s.Phase() != PhaseBreakFinished {
		return ErrBreakNotFinished
	}
	return s.Start()
}

// Reset returns to idle from any phase.
func (s *SessionState) Reset() {
	s.IsSessionActive = false
	s.clearLock()
	s.TimeRemaining = s.TotalSeconds()
	s.ActiveReelIndex = 0
}

// TickSession advances the session countdown by one second and locks the
// session when it runs out. It reports whether the tick applied; ticks outside
// the running phase are ignored.
func (s *SessionState) TickSession() bool {
	if s.Phase() != PhaseRunning {
		return false
	}
	if s.TimeRemaining <= 1 {
		s.TimeRemaining = 0
		s.IsSessionActive = false
		s.IsLocked = true
		s.BreakFinished = false
		s.BreakRemaining = BreakSeconds
		return true
	}
	s.TimeRemaining--
	return true
}

// TickBreak advances the break countdown by one second.
func (s *SessionState) TickBreak() bool {
	if s.Phase() != PhaseBreathing {
		return false
	}
	if s.BreakRemaining <= 1 {
		s.BreakRemaining = 0
		s.BreakFinished = true
		return true
	}
	s.BreakRemaining--
	return true
}

// RotateReel is the automatic carousel step; it only acts while running.
func (s *SessionState) RotateReel() bool {
	if s.Phase() != PhaseRunning {
		return false
	}
	s.ActiveReelIndex = wrapIndex(s.ActiveReelIndex+1, s.reelCount)
	return true
}

// NextReel moves the carousel forward by hand.
func (s *SessionState) NextReel() error {
	if s.IsLocked {
		return ErrLocked
	}
	s.ActiveReelIndex = wrapIndex(s.ActiveReelIndex+1, s.reelCount)
	return nil
}

// PreviousReel moves the carousel back by hand.
func (s *SessionState) PreviousReel() error {
	if s.IsLocked {
		return ErrLocked
	}
	s.ActiveReelIndex = wrapIndex(s.ActiveReelIndex-1, s.reelCount)
	return nil
}

// Progress returns how much of the allowance is used up (0.0 to 1.0).
func (s *SessionState) Progress() float64 {
	total := s.TotalSeconds()
	if total == 0 {
		return 0
	}
	if s.IsLocked {
		return 1
	}
	p := float64(total-s.TimeRemaining) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (s *SessionState) clearLock() {
	s.IsLocked = false
	s.BreakFinished = false
	s.BreakRemaining = BreakSeconds
}
