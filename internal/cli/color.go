package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E6E6E6"})
	headingStyle = infoStyle.Bold(true)
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

// sectionWidth is the width of a section rule such as
// "------------------ Reminders ------------------".
const sectionWidth = 49

// Section renders a centered section title padded with dashes.
func Section(title string) string {
	pad := sectionWidth - len(title) - 2
	if pad < 2 {
		pad = 2
	}
	left := pad / 2
	right := pad - left
	return headingStyle.Render(strings.Repeat("-", left) + " " + title + " " + strings.Repeat("-", right))
}
