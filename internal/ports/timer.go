package ports

import (
	"context"

	"github.com/xvierd/reel-detox/internal/domain"
)

// TimerCommand represents a user action in the session view.
type TimerCommand string

const (
	// CmdStart starts a fresh session.
	CmdStart TimerCommand = "start"

	// CmdPause pauses the running session.
	CmdPause TimerCommand = "pause"

	// CmdReset returns to idle from any state.
	CmdReset TimerCommand = "reset"

	// CmdResume starts another session after the break.
	CmdResume TimerCommand = "resume"

	// CmdNextReel moves the carousel forward.
	CmdNextReel TimerCommand = "next_reel"

	// CmdPreviousReel moves the carousel back.
	CmdPreviousReel TimerCommand = "previous_reel"

	// CmdMinutesUp lengthens the session by one minute.
	CmdMinutesUp TimerCommand = "minutes_up"

	// CmdMinutesDown shortens the session by one minute.
	CmdMinutesDown TimerCommand = "minutes_down"
)

// Timer is the interactive session view.
// This is a driving port (called by the application layer).
type Timer interface {
	// Run starts the view and blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context, initial domain.Snapshot) error

	// Stop gracefully stops the view.
	Stop()

	// SetCommandCallback sets the function invoked for every user command.
	SetCommandCallback(callback func(cmd TimerCommand) error)

	// SetPresetCallback sets the function invoked when a quick-select preset is chosen.
	SetPresetCallback(callback func(index int) error)

	// UpdateState pushes a new snapshot to the view.
	UpdateState(snapshot domain.Snapshot)
}
