// Package cmd provides the CLI commands for Taskline.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"taskline/internal/errors"
	"taskline/internal/output"
	"taskline/internal/runtime"
	"taskline/internal/tui"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command. Called without a subcommand it
// opens the interactive interface.
var rootCmd = &cobra.Command{
	Use:   "taskline",
	Short: "A personal task tracker for the terminal",
	Long: `Taskline tracks your tasks from the command line, with recurring
tasks and an interactive terminal interface.

Examples:
  taskline                       open the interactive interface
  taskline add 'water plants' --repeats Mon,Thu
  taskline ls --filter today
  taskline done 3
  taskline rm 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Config{
			Tasks:         ctx.Collection,
			Settings:      ctx.Settings,
			SettingsStore: ctx.SettingsRepo,
		})
	},
}

// Execute runs the root command. Errors are printed with a
// suggestion where one is known.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("taskline %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// printError reports a command failure on the configured format.
func printError(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError(err.Error(), errors.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + errors.FormatError(err) + "\n")
	}
}
