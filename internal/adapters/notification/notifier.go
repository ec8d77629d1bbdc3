// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/reel-detox/internal/config"
	"github.com/xvierd/reel-detox/internal/domain"
)

// Notifier handles desktop notifications.
type Notifier struct {
	mu      sync.RWMutex
	enabled bool
	sound   bool

	notify func(title, message string) error
	beep   func() error
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	n := &Notifier{
		notify: func(title, message string) error { return beeep.Notify(title, message, "") },
		beep:   func() error { return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration) },
	}
	if cfg != nil {
		n.enabled = cfg.Enabled
		n.sound = cfg.Sound
	}
	return n
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	n.mu.RLock()
	enabled, sound := n.enabled, n.sound
	n.mu.RUnlock()
	if !enabled {
		return nil
	}

	if err := n.notify(title, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	if sound {
		if err := n.beep(); err != nil {
			return fmt.Errorf("failed to play sound: %w", err)
		}
	}
	return nil
}

// NotifyLimitReached tells the user the allowance is used up.
func (n *Notifier) NotifyLimitReached(minutes int) error {
	title := "🔒 Limit reached"
	message := fmt.Sprintf("Your %d-minute scroll allowance is used up. Take a %d-second breather away from the feed.",
		minutes, domain.BreakSeconds)
	return n.Notify(title, message)
}

// NotifyBreakComplete tells the user the break is over.
func (n *Notifier) NotifyBreakComplete() error {
	return n.Notify("🌿 Break complete", "Ready when you are. Start another focused burst.")
}

// HandleEvent sends the notification matching a phase change, if any.
func (n *Notifier) HandleEvent(ev domain.Event) error {
	if !ev.PhaseChanged() {
		return nil
	}
	switch ev.Snapshot.Phase {
	case domain.PhaseBreathing:
		return n.NotifyLimitReached(ev.Snapshot.SessionMinutes)
	case domain.PhaseBreakFinished:
		return n.NotifyBreakComplete()
	}
	return nil
}

// SetEnabled turns notifications on or off.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	n.enabled = enabled
	n.mu.Unlock()
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}
