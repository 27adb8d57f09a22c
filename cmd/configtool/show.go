package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
	"gopkg.in/yaml.v3"
)

// createShowCommand creates the show command.
func createShowCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show all settings",
		Long:  "Show every setting in editor order as text, yaml or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}

			_, a, err := env.openApp(cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			return writeValues(cmd.OutOrStdout(), format, a.Store().Snapshot())
		},
	}

	cmd.Flags().String("format", "text", "Output format (text, yaml, json)")
	return cmd
}

func writeValues(out io.Writer, format string, values settings.Values) error {
	switch format {
	case "text":
		for _, f := range settings.Fields() {
			_, _ = fmt.Fprintf(out, "%s %s\n", color.CyanString("%-13s", f.Key), f.Get(&values))
		}
		return nil
	case "yaml":
		encoder := yaml.NewEncoder(out)
		if err := encoder.Encode(values); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	default:
		return fmt.Errorf("unknown format %q: use text, yaml or json", format)
	}
}
