package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
)

// createSetCommand creates the set command.
func createSetCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value> [<key> <value>...]",
		Short: "Change settings and save them",
		Long:  "Assign one or more settings and write them to the settings file of the folder",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return errors.New("expected key value pairs")
			}
			for i := 0; i < len(args); i += 2 {
				if _, ok := settings.Lookup(args[i]); !ok {
					return fmt.Errorf("%w: %s", settings.ErrUnknownKey, args[i])
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := env.openApp(cmd, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			store := a.Store()
			for i := 0; i < len(args); i += 2 {
				if err := store.Set(args[i], args[i+1]); err != nil {
					return fmt.Errorf("failed to set %s: %w", args[i], err)
				}
			}

			if err := store.Save(ctx); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d setting(s) to %s\n",
				color.GreenString("Saved"), len(args)/2, store.Path())
			return nil
		},
	}
}
