// Package cmd provides Cobra CLI commands for twich.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/twich/internal/cli"
	"github.com/bnema/twich/internal/domain/build"
)

// GUIOptions are the root command flags handed to the GUI.
type GUIOptions struct {
	URL      string
	NoFilter bool
}

// GUIRunner starts the graphical shell and returns the process exit code.
type GUIRunner func(opts GUIOptions) int

var (
	app       *cli.App
	buildInfo build.Info
	guiRunner GUIRunner
	guiOpts   GUIOptions
	exitCode  int

	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "twich",
		Short: "A Twitch shell with ad blocking and picture-in-picture",
		Long: `twich - a single-window WebKitGTK shell for Twitch.

  - Ad and tracker requests are answered locally with 403 Blocked
  - Ad containers are stripped from every page after it loads
  - The live video floats (picture-in-picture) when the window loses focus
  - A side panel plays any stream URL with the native GStreamer player

Run without a subcommand to launch the window.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}
			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if guiRunner == nil {
				return fmt.Errorf("graphical shell not available in this build")
			}
			exitCode = guiRunner(guiOpts)
			return nil
		},
	}

	root.Flags().StringVar(&guiOpts.URL, "url", "", "open this URL instead of the home page")
	root.Flags().BoolVar(&guiOpts.NoFilter, "no-filter", false, "disable request blocking and page sanitizing for this run")

	root.AddCommand(
		newRulesCmd(),
		newCheckCmd(),
		newSanitizeCmd(),
		newTesterCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// needsApp reports whether cmd works on the loaded config and rules.
func needsApp(cmd *cobra.Command) bool {
	if cmd.Annotations["app"] == "true" {
		return true
	}
	return false
}

var withApp = map[string]string{"app": "true"}

// Execute runs the root command and exits with the GUI's exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// SetGUIRunner installs the function run by the bare root command.
func SetGUIRunner(run GUIRunner) {
	guiRunner = run
}
