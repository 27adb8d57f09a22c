package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/thomaskilian/Teacup-Firmware/internal/editor"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
)

const (
	choiceSave   = "save"
	choiceExit   = "exit"
	choiceReview = "review"
)

var menuOptions = map[string]string{
	"s": choiceSave,
	"e": choiceExit,
	"c": choiceExit,
	"r": choiceReview,
}

// RunLineEditor hosts session on a line terminal. Every field is offered
// with its current text for editing, then a menu saves, exits or reviews
// the fields again. Ctrl+C or EOF acts as the exit action; at EOF pending
// changes are discarded.
func RunLineEditor(ctx context.Context, prompter Prompter, out io.Writer, session *editor.Session) (editor.Result, error) {
	log := logging.Get(ctx)
	confirmer := PrompterConfirmer{Prompter: prompter, Out: out}

	review := true
	for !session.Closed() {
		if err := ctx.Err(); err != nil {
			return session.Result(), fmt.Errorf("line editor interrupted: %w", err)
		}

		if review {
			review = false
			if err := editFields(prompter, out, session); err != nil {
				if !errors.Is(err, ErrCancelled) {
					return session.Result(), err
				}
				session.Exit(confirmer)
				continue
			}
		}

		choice, err := QuickSelectWithPrompter(prompter, menuPrompt(session), menuOptions)
		if errors.Is(err, ErrCancelled) {
			choice = choiceExit
		} else if err != nil {
			return session.Result(), err
		}

		switch choice {
		case choiceSave:
			if !session.SaveEnabled() {
				_, _ = fmt.Fprintln(out, color.YellowString("Nothing to save."))
				continue
			}
			result, err := session.Save(ctx)
			if err != nil {
				return result, err
			}
			log.Debug().Msg("settings saved from line editor")
			_, _ = fmt.Fprintln(out, color.GreenString("Settings saved."))
			return result, nil
		case choiceExit:
			session.Exit(confirmer)
		case choiceReview:
			review = true
		default:
			_, _ = fmt.Fprintln(out, "Unknown choice.")
		}
	}

	return session.Result(), nil
}

// editFields offers every row once. Only answers that differ from the
// current text are delivered as edits.
func editFields(prompter Prompter, out io.Writer, session *editor.Session) error {
	for i, row := range session.Rows() {
		_, _ = fmt.Fprintln(out, color.New(color.Faint).Sprint(row.Help))

		answer, err := EditInputWithPrompter(prompter, row.Label+":", row.Text)
		if err != nil {
			return err
		}
		if answer == row.Text {
			continue
		}
		if err := session.Edit(i, answer); err != nil {
			return fmt.Errorf("failed to edit %s: %w", row.Key, err)
		}
	}
	return nil
}

func menuPrompt(session *editor.Session) string {
	exit := "[e]xit"
	if session.Modified() {
		exit = "[c]ancel"
	}
	if session.SaveEnabled() {
		return color.CyanString("[s]ave %s [r]eview: ", exit)
	}
	return color.CyanString("%s [r]eview: ", exit)
}
