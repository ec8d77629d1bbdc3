package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/xvierd/reel-detox/internal/adapters/notification"
	"github.com/xvierd/reel-detox/internal/config"
	"github.com/xvierd/reel-detox/internal/domain"
	"github.com/xvierd/reel-detox/internal/logging"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	configErr  error
	logger     zerolog.Logger
	logCloser  io.Closer
	notifier   *notification.Notifier
	deck       domain.Deck
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads configuration and sets up logging and notifications.
func initializeServices() error {
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	app.configPath = path

	// Load configuration
	var err error
	app.config, err = config.Load(path)
	app.configErr = err
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	app.logger, app.logCloser, err = logging.New(app.config.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if app.configErr != nil {
		app.logger.Warn().Err(app.configErr).Str("path", path).Msg("Using default configuration")
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)
	if noNotify {
		app.notifier.SetEnabled(false)
	}

	app.deck = domain.DefaultDeck()
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logCloser != nil {
		err := app.logCloser.Close()
		app.logCloser = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
