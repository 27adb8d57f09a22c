package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	labelStyle        = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("7"))
	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("14")).Bold(true)

	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	buttonStyle         = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	focusedButtonStyle  = buttonStyle.BorderForeground(lipgloss.Color("14")).Bold(true)
	disabledButtonStyle = buttonStyle.Foreground(lipgloss.Color("8")).BorderForeground(lipgloss.Color("8"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(1, 3)
)
