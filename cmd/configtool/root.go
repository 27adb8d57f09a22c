package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thomaskilian/Teacup-Firmware/internal/app"
	"github.com/thomaskilian/Teacup-Firmware/internal/config"
	"github.com/thomaskilian/Teacup-Firmware/internal/constants"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
	"github.com/thomaskilian/Teacup-Firmware/internal/prompt"
)

// environment holds what commands touch outside the process.
type environment struct {
	fs          afero.Fs
	logWriter   io.Writer // nil logs to the rotated file in the data dir
	input       io.Reader // nil reads the terminal
	newPrompter func() prompt.Prompter
}

func defaultEnvironment() *environment {
	return &environment{
		fs:          afero.NewOsFs(),
		newPrompter: prompt.NewLinerPrompter,
	}
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

func newRootCommand(env *environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Teacup firmware build settings",
		Long: "View and edit the settings the Teacup configtool uses to build and upload firmware.\n" +
			"Settings are read from " + constants.SettingsFilename + " in the settings folder, falling back to " +
			constants.DefaultSettingsFilename + ".",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("folder", "f", ".", "Folder containing the settings files")
	flags.String("log-level", "info", "Log file level (trace, debug, info, warn, error)")
	flags.String("history-path", "", "Path of the save history database (default in the user data dir)")
	flags.Bool("no-history", false, "Do not record saved changes")
	flags.BoolP("verbose", "v", false, "Print debug diagnostics to stderr")

	rootCmd.AddCommand(
		createShowCommand(env),
		createGetCommand(env),
		createSetCommand(env),
		createEditCommand(env),
		createValidateCommand(env),
		createStatusCommand(env),
		createHistoryCommand(env),
	)

	return rootCmd
}

// openApp resolves options, starts logging and opens the settings folder.
// The save history is opened only for commands that save or list it.
func (e *environment) openApp(cmd *cobra.Command, withHistory bool) (context.Context, *app.App, error) {
	opts, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load options: %w", err)
	}

	level := logging.ParseLevel(opts.LogLevel)
	if opts.Verbose && level > logging.DebugLevel {
		level = logging.DebugLevel
	}

	ctx, err := logging.New(cmd.Context(), e.fs, logging.Config{
		Writer:       e.logWriter,
		Console:      cmd.ErrOrStderr(),
		Folder:       opts.Folder,
		Level:        level,
		ConsoleLevel: opts.ConsoleLevel(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logging.Get(ctx).Debug().Str("command", cmd.Name()).Msg("command started")

	open := app.OpenSettings
	if withHistory {
		open = app.Open
	}

	a, err := open(ctx, e.fs, *opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open settings: %w", err)
	}
	return ctx, a, nil
}
