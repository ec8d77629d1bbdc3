// Package cmd provides the CLI commands for the reel-detox application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	configPath string
	logLevel   string

	// Session flags
	minutesFlag int
	noNotify    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reel-detox",
	Short: "reel-detox - mindful micro-sessions instead of endless scrolling",
	Long: `reel-detox trades endless swipes for mindful micro-sessions.
Set a limit, press start, and let the reels guide you out of the
doom-scroll loop. When the allowance runs out the screen locks for a
60-second breather.

Run "reel-detox" with no arguments to open the session view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	Args: cobra.NoArgs,
	RunE: runSession,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.reel-detox/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, disabled")

	rootCmd.Flags().IntVarP(&minutesFlag, "minutes", "m", 0, "Session length in minutes (1-30, default from config)")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications for this run")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("reel-detox\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(reelsCmd)
	rootCmd.AddCommand(configCmd)
}
