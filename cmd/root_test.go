package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xvierd/reel-detox/internal/domain"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)
	resetFlags(cmd)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// resetFlags restores flag defaults, since cobra keeps parsed values on the
// shared command between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
}

// isolate points HOME and --config into a temp dir so tests never touch the real config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	t.Cleanup(func() {
		configPath = ""
		logLevel = ""
		forceInit = false
		noNotify = false
		minutesFlag = 0
	})
	return path
}

func TestRootCmd_Use(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "reel-detox" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "reel-detox")
	}
}

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	for _, want := range []string{"reel-detox", "--minutes", "--no-notify", "reels", "config"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
	for _, name := range []string{"minutes", "no-notify"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout, "Version: "+Version) {
		t.Errorf("version output = %q", stdout)
	}
}

func TestRootCmd_VersionAfterHelp(t *testing.T) {
	if _, _, err := executeCmd(rootCmd, "--help"); err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	stdout, _, err := executeCmd(rootCmd, "--version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout, "Version: "+Version) || strings.Contains(stdout, "Usage:") {
		t.Errorf("version output after help = %q", stdout)
	}
}

func TestRootCmd_RejectsInvalidMinutes(t *testing.T) {
	for _, minutes := range []string{"0", "31", "-2"} {
		t.Run(minutes, func(t *testing.T) {
			configPath = isolate(t)

			_, _, err := executeCmd(rootCmd, "--config", configPath, "--minutes="+minutes)
			defer cleanupServices()
			if !errors.Is(err, domain.ErrMinutesOutOfRange) {
				t.Errorf("--minutes %s error = %v, want ErrMinutesOutOfRange", minutes, err)
			}
		})
	}
}

func TestInitializeServices_NoNotify(t *testing.T) {
	path := isolate(t)
	configPath = path
	noNotify = true

	if err := initializeServices(); err != nil {
		t.Fatalf("initializeServices() error = %v", err)
	}
	defer cleanupServices()

	if app.notifier.IsEnabled() {
		t.Error("--no-notify should disable notifications")
	}
	if len(app.deck) != 5 {
		t.Errorf("len(deck) = %d, want 5", len(app.deck))
	}
	if app.configPath != path {
		t.Errorf("configPath = %q, want %q", app.configPath, path)
	}
}

func TestInitializeServices_BadLogLevel(t *testing.T) {
	configPath = isolate(t)
	logLevel = "loud"

	if err := initializeServices(); err == nil {
		t.Error("initializeServices() should fail for an unknown log level")
	}
}
