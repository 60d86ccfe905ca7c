package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the session browser.
var (
	ColorTitle  = lipgloss.Color("12")
	ColorLabel  = lipgloss.Color("245")
	ColorValue  = lipgloss.Color("252")
	ColorAccent = lipgloss.Color("10")
	ColorError  = lipgloss.Color("9")
	ColorDim    = lipgloss.Color("240")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true).
			MarginBottom(1)

	rowStyle = lipgloss.NewStyle().Foreground(ColorValue)

	rowMetaStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			MarginTop(1)

	navEnabledStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	navDisabledStyle = lipgloss.NewStyle().Foreground(ColorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			MarginTop(1)
)

// deviceIcon maps a device class to a one-glyph marker for the row prefix.
func deviceIcon(device string) string {
	switch device {
	case "desktop":
		return "🖥"
	case "mobile":
		return "📱"
	case "web":
		return "🌐"
	default:
		return "•"
	}
}
