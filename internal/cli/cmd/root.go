// Package cmd provides Cobra CLI commands for sidedock.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filein/sidedock/internal/cli"
	"github.com/filein/sidedock/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "sidedock",
		Short: "A sidebar panel that snaps onto the edges of its host window",
		Long: `Sidedock - a small companion panel that docks against a host window.

Drag the panel freely; release it close to one of the host window's edges
and it snaps flush against that edge. A docked panel follows the host when
the host moves or resizes.

Use 'sidedock playground' to try the docking engine in the terminal, or
'sidedock evaluate' and 'sidedock simulate' to inspect single decisions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if skipsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogToFile:  cmd.Name() == "playground",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
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

func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "gen-docs", "version":
		return true
	case "init", "schema":
		// config init writes the file that loading would create.
		return cmd.Parent() != nil && cmd.Parent().Name() == "config"
	}
	return false
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/sidedock/config.json)")
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
