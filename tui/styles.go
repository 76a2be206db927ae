package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	minTextareaHeight    = 3
	defaultTextareaWidth = 80
	inputBorderHeight    = 2
	headerHeight         = 2
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#2563EB") // Blue
	secondaryColor = lipgloss.Color("#06B6D4") // Cyan
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	dimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	borderColor    = lipgloss.Color("#4B5563")
)

var (
	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textColor).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	userMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(primaryColor).
				MarginLeft(10)

	botMessageStyle = lipgloss.NewStyle().
			Inherit(messageStyle).
			BorderForeground(secondaryColor).
			MarginRight(10)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	botLabelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	imageStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true)

	textAreaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			PaddingLeft(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	pickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Background(primaryColor)

	pickerEntryStyle = lipgloss.NewStyle().
				Foreground(dimTextColor)

	pickerPinStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

// truncate shortens a string to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
