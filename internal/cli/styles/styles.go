// Package styles defines the lipgloss styles shared by the CLI commands.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title renders section headings.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))

	// Name renders template names in listings.
	Name = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	// URL renders URL templates.
	URL = lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	// Muted renders secondary information such as descriptions.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
)
