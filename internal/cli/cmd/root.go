// Package cmd provides Cobra CLI commands for confirm.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/confirm/internal/cli"
	"github.com/bnema/confirm/internal/cli/styles"
	"github.com/bnema/confirm/internal/domain/build"
)

// Exit statuses of the confirm binary.
const (
	exitSelected    = 0
	exitCancelled   = 1
	exitNoSelection = 2
	exitFailure     = 3
)

// exitError carries a non-zero status without printing anything.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var (
	app       *cli.App
	buildInfo build.Info
	overrides cli.Overrides
	configDir string

	rootCmd = &cobra.Command{
		Use:   "confirm",
		Short: "Ask the user to confirm an action",
		Long: `confirm shows a confirmation dialog and reports the chosen action.

On a graphical session the dialog is a GTK window; in a terminal it is an
overlay drawn over the screen. The selected label is printed on stdout and the
exit status tells how the dialog was answered:

  0  a default or destructive action was chosen
  1  the cancel action was chosen
  2  no selection (nowhere to present, or dismissed by the host)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema", "path", "keys":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir, overrides)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "directory holding config.toml (default $XDG_CONFIG_HOME/confirm)")
	flags.StringVar(&overrides.Host, "host", "", "dialog host: auto, gtk or tui (overrides config)")
	flags.StringVar(&overrides.Locale, "locale", "", "BCP 47 tag for built-in labels (overrides config)")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "trace, debug, info, warn or error (overrides config)")
}

// Execute runs the root command and exits with the confirmation status.
func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		_ = app.Close()
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return exitSelected
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if app != nil {
		fmt.Fprintln(os.Stderr, styles.NewRenderer(app.Theme).RenderError(err))
	} else {
		fmt.Fprintln(os.Stderr, "confirm:", err)
	}
	return exitFailure
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
