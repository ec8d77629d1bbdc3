package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xvierd/reel-detox/internal/adapters/clock"
	"github.com/xvierd/reel-detox/internal/adapters/notification"
	"github.com/xvierd/reel-detox/internal/adapters/tui"
	"github.com/xvierd/reel-detox/internal/domain"
	"github.com/xvierd/reel-detox/internal/ports"
	"github.com/xvierd/reel-detox/internal/services"
)

// runSession opens the interactive session view.
func runSession(cmd *cobra.Command, args []string) error {
	minutes, err := sessionMinutes(cmd)
	if err != nil {
		return err
	}

	scheduler := clock.NewTickerScheduler()
	defer scheduler.Wait()

	controller, err := services.NewSessionController(services.ControllerConfig{
		Minutes:   minutes,
		Presets:   app.config.Session.Presets,
		ReelCount: len(app.deck),
	}, scheduler, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer controller.Close()

	timer := tui.NewTimer(app.deck, controller.Presets(), &app.config.Theme)
	return launchTUI(cmd, controller, timer)
}

// sessionMinutes returns the --minutes flag when given, else the configured default.
func sessionMinutes(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("minutes") {
		return app.config.Session.DefaultMinutes, nil
	}
	if minutesFlag < domain.MinSessionMinutes || minutesFlag > domain.MaxSessionMinutes {
		return 0, fmt.Errorf("invalid --minutes %d: %w", minutesFlag, domain.ErrMinutesOutOfRange)
	}
	return minutesFlag, nil
}

// launchTUI wires the controller to the view and blocks until the view exits.
func launchTUI(cmd *cobra.Command, controller *services.SessionController, timer ports.Timer) error {
	ctx, cancel := setupSignalHandler()
	defer cancel()

	logger := app.logger.With().Str("component", "cli").Logger()

	unsubscribe := controller.Subscribe(func(ev domain.Event) {
		timer.UpdateState(ev.Snapshot)
		if ev.PhaseChanged() {
			go notifyPhase(app.notifier, ev, logger)
		}
	})
	defer unsubscribe()

	timer.SetCommandCallback(func(c ports.TimerCommand) error {
		return dispatchCommand(controller, c, logger)
	})
	timer.SetPresetCallback(func(index int) error {
		_, err := controller.SelectPreset(index)
		if err != nil {
			logger.Debug().Err(err).Int("preset", index+1).Msg("Preset rejected")
		}
		return err
	})

	initial := controller.Snapshot()
	logger.Info().Int("minutes", initial.SessionMinutes).Msg("Session view opened")

	if err := timer.Run(ctx, initial); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	logger.Info().Msg("Session view closed")
	return nil
}

// dispatchCommand maps a view command onto the controller.
func dispatchCommand(controller *services.SessionController, c ports.TimerCommand, logger zerolog.Logger) error {
	var err error
	switch c {
	case ports.CmdStart:
		_, err = controller.Start()
	case ports.CmdPause:
		_, err = controller.Pause()
	case ports.CmdReset:
		_, err = controller.Reset()
	case ports.CmdResume:
		_, err = controller.Resume()
	case ports.CmdNextReel:
		_, err = controller.NextReel()
	case ports.CmdPreviousReel:
		_, err = controller.PreviousReel()
	case ports.CmdMinutesUp:
		_, err = controller.AdjustMinutes(1)
	case ports.CmdMinutesDown:
		_, err = controller.AdjustMinutes(-1)
	default:
		return fmt.Errorf("unknown command: %v", c)
	}
	if err != nil {
		logger.Debug().Err(err).Str("command", string(c)).Msg("Command rejected")
	}
	return err
}

func notifyPhase(n *notification.Notifier, ev domain.Event, logger zerolog.Logger) {
	if n == nil {
		return
	}
	if err := n.HandleEvent(ev); err != nil {
		// Log notification errors but don't fail
		logger.Warn().Err(err).Str("phase", string(ev.Snapshot.Phase)).Msg("Notification failed")
	}
}
