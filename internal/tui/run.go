package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thomaskilian/Teacup-Firmware/internal/editor"
)

// Run shows session as a full-screen form until it is saved or exited.
// A settings save failure is returned after the form closes.
func Run(ctx context.Context, session *editor.Session, opts ...tea.ProgramOption) (editor.Result, error) {
	m := newModel(ctx, session)

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, options...).Run(); err != nil {
		return session.Result(), fmt.Errorf("terminal form failed: %w", err)
	}

	return session.Result(), m.err
}
