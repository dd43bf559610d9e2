package tui

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	BarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	EventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)
)
