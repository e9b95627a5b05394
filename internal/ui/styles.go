package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Reverse(true)
	pressedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
