package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	buttonStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2)
	busyButtonStyle  = buttonStyle.Faint(true)
	successBoxStyle  = overlayBoxStyle.BorderForeground(lipgloss.Color("2"))
	failureBoxStyle  = overlayBoxStyle.BorderForeground(lipgloss.Color("1"))
)
