package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/reel-detox/internal/config"
	"github.com/xvierd/reel-detox/internal/domain"
	"github.com/xvierd/reel-detox/internal/ports"
)

// Timer implements the ports.Timer interface using Bubbletea.
type Timer struct {
	deck    domain.Deck
	presets []int
	theme   *config.ThemeConfig
	opts    []tea.ProgramOption

	mu             sync.RWMutex
	wg             sync.WaitGroup
	program        *tea.Program
	cancel         context.CancelFunc
	cmdCallback    func(cmd ports.TimerCommand) error
	presetCallback func(index int) error

	// pending holds at most one snapshot waiting to be sent to the program.
	pending chan domain.Snapshot
}

// NewTimer creates a new TUI timer adapter. Without options the program
// runs fullscreen in the alternate screen.
func NewTimer(deck domain.Deck, presets []int, theme *config.ThemeConfig, opts ...tea.ProgramOption) *Timer {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Timer{
		deck:    deck,
		presets: presets,
		theme:   theme,
		opts:    opts,
		pending: make(chan domain.Snapshot, 1),
	}
}

// Run starts the timer interface and blocks until completion.
func (t *Timer) Run(ctx context.Context, initial domain.Snapshot) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(initial, t.deck, t.presets, t.theme)

	t.mu.Lock()
	model.SetCommandCallback(t.cmdCallback)
	model.SetPresetCallback(t.presetCallback)
	program := tea.NewProgram(model, t.opts...)
	t.program = program
	t.cancel = cancel
	t.mu.Unlock()

	// Handle context cancellation
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	// Forward snapshots without ever blocking the controller.
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-t.pending:
				program.Send(snapshotMsg{snapshot: s})
			}
		}
	}()

	_, err := program.Run()

	// Signal cancellation and wait for goroutines
	cancel()
	t.wg.Wait()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop gracefully stops the timer interface.
func (t *Timer) Stop() {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.cancel != nil {
		t.cancel()
	}
	if t.program != nil {
		t.program.Quit()
	}
}

// SetCommandCallback sets a function to call when commands are received.
// It must be set before Run.
func (t *Timer) SetCommandCallback(callback func(cmd ports.TimerCommand) error) {
	t.mu.Lock()
	t.cmdCallback = callback
	t.mu.Unlock()
}

// SetPresetCallback sets a function to call when a preset is chosen.
// It must be set before Run.
func (t *Timer) SetPresetCallback(callback func(index int) error) {
	t.mu.Lock()
	t.presetCallback = callback
	t.mu.Unlock()
}

// UpdateState queues a snapshot for display. It never blocks: a snapshot
// still waiting in the queue is replaced by the newer one.
func (t *Timer) UpdateState(s domain.Snapshot) {
	for {
		select {
		case t.pending <- s:
			return
		default:
		}
		select {
		case old := <-t.pending:
			if old.Version > s.Version {
				s = old
			}
		default:
		}
	}
}

// Ensure Timer implements ports.Timer.
var _ ports.Timer = (*Timer)(nil)
