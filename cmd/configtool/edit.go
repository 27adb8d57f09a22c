package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thomaskilian/Teacup-Firmware/internal/editor"
	"github.com/thomaskilian/Teacup-Firmware/internal/prompt"
	"github.com/thomaskilian/Teacup-Firmware/internal/tui"
)

// createEditCommand creates the edit command.
func createEditCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit settings interactively",
		Long:  "Open the settings form. Changes are written only when saved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plain, err := cmd.Flags().GetBool("plain")
			if err != nil {
				return fmt.Errorf("failed to get plain flag: %w", err)
			}

			ctx, a, err := env.openApp(cmd, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			session := editor.New(a.Store())

			var result editor.Result
			if plain {
				result, err = env.runLineEditor(ctx, cmd.OutOrStdout(), session)
			} else {
				result, err = env.runForm(ctx, cmd.OutOrStdout(), session)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result == editor.ResultConfirmed {
				_, _ = fmt.Fprintf(out, "%s settings to %s\n", color.GreenString("Saved"), a.Store().Path())
			} else {
				_, _ = fmt.Fprintln(out, "No changes saved.")
			}
			return nil
		},
	}

	cmd.Flags().Bool("plain", false, "Use line prompts instead of the full-screen form")
	return cmd
}

func (e *environment) runLineEditor(ctx context.Context, out io.Writer, session *editor.Session) (editor.Result, error) {
	prompter := e.newPrompter()
	defer func() { _ = prompter.Close() }()

	result, err := prompt.RunLineEditor(ctx, prompter, out, session)
	if err != nil {
		return result, fmt.Errorf("line editor failed: %w", err)
	}
	return result, nil
}

func (e *environment) runForm(ctx context.Context, out io.Writer, session *editor.Session) (editor.Result, error) {
	var opts []tea.ProgramOption
	if e.input != nil {
		opts = append(opts, tea.WithInput(e.input), tea.WithOutput(out))
	}

	result, err := tui.Run(ctx, session, opts...)
	if err != nil {
		return result, fmt.Errorf("settings form failed: %w", err)
	}
	return result, nil
}
