package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

// severe and elevated loads stand out in the dashboard table.
var (
	severeLoadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	elevatedLoadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	moderateLoadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("185"))
	lightLoadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
