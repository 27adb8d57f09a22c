package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
)

// createGetCommand creates the get command.
func createGetCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Print one setting",
		Args:      cobra.ExactArgs(1),
		ValidArgs: settings.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := env.openApp(cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			value, ok := a.Store().Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", settings.ErrUnknownKey, args[0])
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
