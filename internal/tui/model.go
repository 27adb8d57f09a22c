// Package tui hosts the settings editor as a bubbletea terminal form.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thomaskilian/Teacup-Firmware/internal/editor"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
)

const title = "Teacup configtool settings"

// model renders one editor session. Focus positions past the last row
// select the Save and Exit buttons.
type model struct {
	ctx        context.Context
	session    *editor.Session
	err        error
	rows       []editor.Row
	inputs     []textinput.Model
	focus      int
	width      int
	confirming bool
	quitting   bool
}

func newModel(ctx context.Context, session *editor.Session) *model {
	rows := session.Rows()
	inputs := make([]textinput.Model, session.Len())
	for i, row := range rows {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 0
		ti.SetValue(row.Text)
		ti.CursorEnd()
		inputs[i] = ti
	}

	m := &model{
		ctx:     ctx,
		session: session,
		rows:    rows,
		inputs:  inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m *model) saveButton() int { return len(m.inputs) }
func (m *model) exitButton() int { return len(m.inputs) + 1 }

func (*model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.inputs {
			m.inputs[i].Width = max(20, m.width-lipgloss.Width(labelStyle.Render(""))-4)
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if m.confirming {
		switch key {
		case "y", "Y":
			m.confirming = false
			m.session.ConfirmExit(true)
			return m.quit()
		case "n", "N", "esc", "enter", "ctrl+c":
			m.confirming = false
			m.session.ConfirmExit(false)
		}
		return nil
	}

	switch key {
	case "ctrl+c", "esc":
		return m.requestExit()
	case "ctrl+s":
		return m.save()
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter":
		switch m.focus {
		case m.saveButton():
			return m.save()
		case m.exitButton():
			return m.requestExit()
		default:
			return m.moveFocus(1)
		}
	}

	if m.focus >= len(m.inputs) {
		return nil
	}
	return m.updateInput(msg)
}

// updateInput forwards a key to the focused field and reports a value
// that differs from the session's text as an edit.
func (m *model) updateInput(msg tea.KeyMsg) tea.Cmd {
	i := m.focus

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	current, err := m.session.Text(i)
	if err != nil {
		m.err = err
		return cmd
	}
	if after := m.inputs[i].Value(); after != current {
		if err := m.session.Edit(i, after); err != nil {
			m.err = err
		}
	}
	return cmd
}

func (m *model) moveFocus(delta int) tea.Cmd {
	positions := len(m.inputs) + 2
	next := (m.focus + delta + positions) % positions
	if next == m.saveButton() && !m.session.SaveEnabled() {
		next = (next + delta + positions) % positions
	}

	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *model) save() tea.Cmd {
	if !m.session.SaveEnabled() {
		return nil
	}

	if _, err := m.session.Save(m.ctx); err != nil {
		logging.Get(m.ctx).Warn().Err(err).Msg("settings save failed")
		m.err = err
	}
	return m.quit()
}

func (m *model) requestExit() tea.Cmd {
	if _, needConfirm := m.session.RequestExit(); needConfirm {
		m.confirming = true
		return nil
	}
	return m.quit()
}

func (m *model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	if m.confirming {
		return m.confirmView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(row.Label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.focus < len(m.rows) {
		b.WriteString(helpStyle.Width(max(40, m.width)).Render(m.rows[m.focus].Help))
	}
	b.WriteString("\n\n")
	b.WriteString(m.buttonsView())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("tab/↑↓ move • ctrl+s save • esc " + strings.ToLower(m.session.ExitLabel())))
	return b.String()
}

func (m *model) buttonsView() string {
	save := buttonStyle
	switch {
	case !m.session.SaveEnabled():
		save = disabledButtonStyle
	case m.focus == m.saveButton():
		save = focusedButtonStyle
	}

	exit := buttonStyle
	if m.focus == m.exitButton() {
		exit = focusedButtonStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		save.Render("Save"), " ", exit.Render(m.session.ExitLabel()))
}

func (*model) confirmView() string {
	body := titleStyle.Render(editor.ConfirmTitle) + "\n\n" +
		editor.ConfirmMessage + "\n\n" +
		footerStyle.Render("y discard • n keep editing")
	return dialogStyle.Render(body)
}
