package cli

import "github.com/charmbracelet/lipgloss"

// Verification outcome styles. Palette follows the house theme.
var (
	styleMatch    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true) // Green
	styleMismatch = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true) // Red
	styleHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))            // Yellow
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))            // Medium gray
)
