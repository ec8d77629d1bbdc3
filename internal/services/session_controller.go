// Package services implements the reel-detox use cases on top of the domain.
package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xvierd/reel-detox/internal/domain"
	"github.com/xvierd/reel-detox/internal/ports"
)

// ErrControllerClosed is returned by every operation after Close.
var ErrControllerClosed = errors.New("session controller closed")

// DefaultPresets are the quick-select session lengths in minutes.
var DefaultPresets = []int{3, 5, 10, 15}

// ControllerConfig holds the settings the controller starts with.
type ControllerConfig struct {
	Minutes   int
	Presets   []int
	ReelCount int
}

// SessionController owns the session state and the timers tied to its phases.
// Every transition and every timer callback runs under one lock, so callers
// only ever see fully applied transitions.
type SessionController struct {
	mu        sync.Mutex
	state     *domain.SessionState
	presets   []int
	scheduler ports.Scheduler
	effects   *effectTable
	version   uint64
	closed    bool

	listeners  map[int]func(domain.Event)
	nextListen int

	logger zerolog.Logger
}

// NewSessionController creates an idle controller.
func NewSessionController(cfg ControllerConfig, scheduler ports.Scheduler, logger zerolog.Logger) (*SessionController, error) {
	if scheduler == nil {
		return nil, errors.New("scheduler is required")
	}
	if cfg.Minutes == 0 {
		cfg.Minutes = domain.DefaultSessionMinutes
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = DefaultPresets
	}
	for _, p := range cfg.Presets {
		if p < domain.MinSessionMinutes || p > domain.MaxSessionMinutes {
			return nil, fmt.Errorf("invalid preset %d: %w", p, domain.ErrMinutesOutOfRange)
		}
	}

	state, err := domain.NewSessionState(cfg.Minutes, cfg.ReelCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create session state: %w", err)
	}

	return &SessionController{
		state:     state,
		presets:   append([]int(nil), cfg.Presets...),
		scheduler: scheduler,
		effects:   newEffectTable(),
		listeners: make(map[int]func(domain.Event)),
		logger:    logger.With().Str("component", "session-controller").Logger(),
	}, nil
}

// Presets returns the quick-select session lengths.
func (c *SessionController) Presets() []int {
	return append([]int(nil), c.presets...)
}

// Snapshot returns the current state.
func (c *SessionController) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot(c.version)
}

// Subscribe registers fn for every committed transition and returns a func
// that removes it. fn is called outside the controller lock, possibly from a
// timer goroutine.
func (c *SessionController) Subscribe(fn func(domain.Event)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextListen
	c.nextListen++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Start begins a fresh session.
func (c *SessionController) Start() (domain.Snapshot, error) {
	return c.apply("start", (*domain.SessionState).Start)
}

// Pause stops the running countdown.
func (c *SessionController) Pause() (domain.Snapshot, error) {
	return c.apply("pause", (*domain.SessionState).Pause)
}

// Resume starts another session once the break has finished.
func (c *SessionController) Resume() (domain.Snapshot, error) {
	return c.apply("resume", (*domain.SessionState).Resume)
}

// Reset returns to idle from any phase.
func (c *SessionController) Reset() (domain.Snapshot, error) {
	return c.apply("reset", func(s *domain.SessionState) error {
		s.Reset()
		return nil
	})
}

// SetMinutes changes the session length while idle.
func (c *SessionController) SetMinutes(m int) (domain.Snapshot, error) {
	return c.apply("set_minutes", func(s *domain.SessionState) error {
		return s.SetMinutes(m)
	})
}

// AdjustMinutes nudges the session length while idle.
func (c *SessionController) AdjustMinutes(delta int) (domain.Snapshot, error) {
	return c.apply("adjust_minutes", func(s *domain.SessionState) error {
		return s.AdjustMinutes(delta)
	})
}

// SelectPreset applies the quick-select preset at index.
func (c *SessionController) SelectPreset(index int) (domain.Snapshot, error) {
	if index < 0 || index >= len(c.presets) {
		return c.Snapshot(), fmt.Errorf("preset %d: %w", index+1, domain.ErrUnknownPreset)
	}
	return c.SetMinutes(c.presets[index])
}

// NextReel moves the carousel forward.
func (c *SessionController) NextReel() (domain.Snapshot, error) {
	return c.apply("next_reel", (*domain.SessionState).NextReel)
}

// PreviousReel moves the carousel back.
func (c *SessionController) PreviousReel() (domain.Snapshot, error) {
	return c.apply("previous_reel", (*domain.SessionState).PreviousReel)
}

// Close cancels every timer. Later operations return ErrControllerClosed.
func (c *SessionController) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.effects.cancelAll()
	c.logger.Debug().Msg("Session controller closed")
	return nil
}

// activeEffects reports the armed timers, for tests.
func (c *SessionController) activeEffects() []effectKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.effects.kinds()
}

// apply runs a user transition and publishes it when it succeeds.
func (c *SessionController) apply(op string, fn func(*domain.SessionState) error) (domain.Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		snap := c.state.Snapshot(c.version)
		c.mu.Unlock()
		return snap, ErrControllerClosed
	}

	from := c.state.Phase()
	if err := fn(c.state); err != nil {
		snap := c.state.Snapshot(c.version)
		c.mu.Unlock()
		c.logger.Debug().Err(err).Str("op", op).Str("phase", string(from)).Msg("Transition rejected")
		return snap, err
	}

	ev, listeners := c.commitLocked(op, from)
	c.mu.Unlock()

	c.publish(ev, listeners)
	return ev.Snapshot, nil
}

// onEffect is the timer callback. Calls from a timer that has since been
// cancelled are dropped.
func (c *SessionController) onEffect(kind effectKind, gen uint64) {
	c.mu.Lock()
	if c.closed || !c.effects.current(kind, gen) {
		c.mu.Unlock()
		return
	}

	from := c.state.Phase()
	var applied bool
	switch kind {
	case effectSessionTick:
		applied = c.state.TickSession()
	case effectBreakTick:
		applied = c.state.TickBreak()
	case effectReelRotation:
		applied = c.state.RotateReel()
	}
	if !applied {
		c.mu.Unlock()
		return
	}

	ev, listeners := c.commitLocked(string(kind), from)
	c.mu.Unlock()

	c.publish(ev, listeners)
}

// commitLocked reconciles timers with the new phase and takes the snapshot.
// c.mu must be held.
func (c *SessionController) commitLocked(op string, from domain.Phase) (domain.Event, []func(domain.Event)) {
	to := c.state.Phase()
	stopped, started := c.effects.reconcile(to, func(kind effectKind, gen uint64) func() {
		return c.scheduler.Every(kind.interval(), func() { c.onEffect(kind, gen) })
	})

	c.version++
	ev := domain.Event{Op: op, From: from, Snapshot: c.state.Snapshot(c.version)}

	if from != to {
		c.logger.Info().
			Str("op", op).
			Str("from", string(from)).
			Str("to", string(to)).
			Str("run_id", c.state.RunID).
			Int("time_remaining", c.state.TimeRemaining).
			Strs("timers_stopped", effectNames(stopped)).
			Strs("timers_started", effectNames(started)).
			Msg("Session phase changed")
	}

	listeners := make([]func(domain.Event), 0, len(c.listeners))
	for id := 0; id < c.nextListen; id++ {
		if fn, ok := c.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	return ev, listeners
}

func (c *SessionController) publish(ev domain.Event, listeners []func(domain.Event)) {
	for _, fn := range listeners {
		fn(ev)
	}
}

func effectNames(kinds []effectKind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
