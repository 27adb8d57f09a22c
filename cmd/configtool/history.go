package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// createHistoryCommand creates the history command.
func createHistoryCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently saved changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}

			ctx, a, err := env.openApp(cmd, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if a.History() == nil {
				return errors.New("history is disabled")
			}

			entries, err := a.History().List(ctx, a.Store().Folder(), limit)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "No saved changes recorded.")
				return nil
			}

			for _, e := range entries {
				_, _ = fmt.Fprintf(out, "%s %s %s: %q -> %q\n",
					color.New(color.Faint).Sprint(e.SavedAt.Local().Format(time.DateTime)),
					color.New(color.Faint).Sprint(shortID(e.SessionID)),
					color.CyanString(e.Key), e.Old, e.New)
			}
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of changes to list (0 for all)")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
