package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
)

// createValidateCommand creates the validate command.
func createValidateCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check numeric settings",
		Long:  "Report numeric settings whose text is not an integer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, a, err := env.openApp(cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			out := cmd.OutOrStdout()
			values := a.Store().Snapshot()

			failed := 0
			for _, f := range settings.Fields() {
				if !f.Numeric {
					continue
				}
				if _, err := values.Int(f.Key); err != nil {
					failed++
					_, _ = fmt.Fprintf(out, "%s %s: %q is not an integer\n", color.RedString("✗"), f.Key, f.Get(&values))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d setting(s) failed validation", failed)
			}

			_, _ = fmt.Fprintf(out, "%s all numeric settings are valid\n", color.GreenString("✓"))
			return nil
		},
	}
}
