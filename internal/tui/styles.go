package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	labelStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	toastStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(48)
	toastDestructiveStyle = toastStyle.BorderForeground(lipgloss.Color("9")).Foreground(lipgloss.Color("9"))
)
