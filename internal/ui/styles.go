package ui

import "github.com/charmbracelet/lipgloss"

var (
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1F7A5C", Dark: "#3CE074"})

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	reminderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A05A00", Dark: "#F0C648"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
