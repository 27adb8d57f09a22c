// Package prompt provides liner-backed line input and the line-mode host
// of the settings editor.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

var (
	// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or EOF.
	ErrCancelled = errors.New("cancelled by user")

	// ErrInputClosed is returned at EOF. It matches ErrCancelled.
	ErrInputClosed = fmt.Errorf("input closed: %w", ErrCancelled)
)

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(prompt string) (string, error)
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

func inputError(err error, what string) error {
	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	if errors.Is(err, liner.ErrPromptAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("%s failed: %w", what, err)
}

// TextInputWithPrompter reads one line after a colored prompt
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	result, err := prompter.Prompt(color.CyanString(prompt + " "))
	if err != nil {
		return "", inputError(err, "text input")
	}
	return result, nil
}

// EditInputWithPrompter reads one line pre-filled with text, cursor at the end
func EditInputWithPrompter(prompter Prompter, prompt, text string) (string, error) {
	result, err := prompter.PromptWithSuggestion(color.CyanString(prompt+" "), text, -1)
	if err != nil {
		return "", inputError(err, "edit input")
	}
	return result, nil
}

// QuickSelectWithPrompter provides single-key selection from a menu of options using a custom prompter.
// An answer outside options yields an empty choice.
func QuickSelectWithPrompter(prompter Prompter, prompt string, options map[string]string) (string, error) {
	result, err := prompter.Prompt(prompt)
	if err != nil {
		return "", inputError(err, "quick select")
	}

	if choice, ok := options[strings.ToLower(strings.TrimSpace(result))]; ok {
		return choice, nil
	}

	return "", nil
}

// Confirm asks a yes/no question. Anything but an explicit yes, including
// an aborted prompt, answers no.
func Confirm(prompter Prompter, out io.Writer, title, message string) bool {
	yes, _ := ConfirmInput(prompter, out, title, message)
	return yes
}

// ConfirmInput is Confirm that also reports why no answer was read.
func ConfirmInput(prompter Prompter, out io.Writer, title, message string) (bool, error) {
	_, _ = fmt.Fprintln(out, color.YellowString(title))
	_, _ = fmt.Fprintln(out, message)

	answer, err := prompter.Prompt(color.CyanString("[y/N] "))
	if err != nil {
		return false, inputError(err, "confirm")
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PrompterConfirmer asks editor confirmations through a Prompter.
// Closed input confirms the discard, since no later answer can arrive.
type PrompterConfirmer struct {
	Prompter Prompter
	Out      io.Writer
}

func (c PrompterConfirmer) Confirm(title, message string) bool {
	yes, err := ConfirmInput(c.Prompter, c.Out, title, message)
	if errors.Is(err, ErrInputClosed) {
		return true
	}
	return yes
}
