package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xvierd/reel-detox/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration reel-detox runs with: session length, quick-select
presets, notifications and logging. Missing settings fall back to defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printConfig(cmd.OutOrStdout(), app.config, app.configPath, app.configErr)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(app.configPath); err == nil && !forceInit {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", app.configPath)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config: %w", err)
		}

		if err := config.Save(config.DefaultConfig(), app.configPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", app.configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func printConfig(w io.Writer, cfg *config.Config, path string, loadErr error) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "  Current configuration:")
	fmt.Fprintf(w, "  File:             %s\n", path)
	if loadErr != nil {
		yellow.Fprintf(w, "  Warning:          %v (using defaults)\n", loadErr)
	}
	fmt.Fprintln(w)

	presets := make([]string, len(cfg.Session.Presets))
	for i, p := range cfg.Session.Presets {
		presets[i] = fmt.Sprintf("%dm", p)
	}
	fmt.Fprintf(w, "  Session length:   %d min\n", cfg.Session.DefaultMinutes)
	fmt.Fprintf(w, "  Presets:          %s\n", strings.Join(presets, " "))

	notifStatus := "off"
	if cfg.Notifications.Enabled {
		notifStatus = "on"
		if cfg.Notifications.Sound {
			notifStatus = "on (with sound)"
		}
	}
	fmt.Fprintf(w, "  Notifications:    %s\n", notifStatus)

	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "(disabled)"
	}
	fmt.Fprintf(w, "  Log level:        %s\n", cfg.Logging.Level)
	fmt.Fprintf(w, "  Log file:         %s\n", logFile)
	fmt.Fprintln(w)
}
