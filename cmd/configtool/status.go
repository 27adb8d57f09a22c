package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thomaskilian/Teacup-Firmware/internal/storage"
)

// createStatusCommand creates the status command.
func createStatusCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where settings come from",
		Long:  "Show the settings folder, the file the settings were loaded from and the log and history locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, a, err := env.openApp(cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			store := a.Store()
			source := store.Source()
			if source == "" {
				source = "built-in defaults"
			}

			logPath, err := storage.New(env.fs).GetLogPath()
			if err != nil {
				return fmt.Errorf("failed to get log path: %w", err)
			}

			historyPath := "disabled"
			if !a.Options().NoHistory {
				historyPath = a.Options().HistoryPath
				if historyPath == "" {
					if historyPath, err = storage.New(env.fs).GetHistoryPath(); err != nil {
						return fmt.Errorf("failed to get history path: %w", err)
					}
				}
			}

			out := cmd.OutOrStdout()
			rows := [][2]string{
				{"Folder", store.Folder()},
				{"Loaded from", source},
				{"Settings file", store.Path()},
				{"Defaults file", store.DefaultPath()},
				{"Log file", logPath},
				{"History", historyPath},
			}
			for _, row := range rows {
				_, _ = fmt.Fprintf(out, "%s %s\n", color.CyanString("%-14s", row[0]+":"), row[1])
			}
			return nil
		},
	}
}
