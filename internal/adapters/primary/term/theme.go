// Package term renders the dashboard widgets and form feedback to the
// terminal with lipgloss styling.
package term

import "github.com/charmbracelet/lipgloss"

// CivicPulse palette - governmental blues with warm accents
var (
	colorCivicBlue   = lipgloss.Color("#1F6FEB") // primary brand blue
	colorSkyBlue     = lipgloss.Color("#58A6FF") // highlights, chart bars
	colorDeepNavy    = lipgloss.Color("#16325C") // borders, frames
	colorSlateGray   = lipgloss.Color("#6E7681") // muted text, axis labels
	colorAmber       = lipgloss.Color("#D29922") // pending, warnings
	colorEmerald     = lipgloss.Color("#2EA043") // resolved, success
	colorCrimson     = lipgloss.Color("#DA3633") // errors, high priority
	colorViolet      = lipgloss.Color("#8957E5") // secondary series
	colorTealAccent  = lipgloss.Color("#39C5CF") // tertiary series
	colorSoftestGray = lipgloss.Color("#484F58") // empty-state text
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCivicBlue)
	styleLabel = lipgloss.NewStyle().Foreground(colorSlateGray)
	styleValue = lipgloss.NewStyle().Bold(true)
	styleMuted = lipgloss.NewStyle().Foreground(colorSoftestGray)

	styleSuccess = lipgloss.NewStyle().Foreground(colorEmerald)
	styleError   = lipgloss.NewStyle().Foreground(colorCrimson)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)

	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDeepNavy).
			Padding(0, 1)

	styleSuccessBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorEmerald).
			Padding(0, 1)

	styleErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCrimson).
			Padding(0, 1)

	// Tier badges mirror the resolution-rate bands on the
	// performance table.
	styleBadgeResolved = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorEmerald).
				Padding(0, 1)
	styleBadgeInProgress = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(colorAmber).
				Padding(0, 1)
	styleBadgePending = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorCrimson).
				Padding(0, 1)
)

// seriesPalette cycles for multi-segment charts (category pie,
// doughnut legends). Fixed order keeps a segment's color stable across
// reloads of the same data.
var seriesPalette = []lipgloss.Color{
	colorCivicBlue,
	colorEmerald,
	colorAmber,
	colorViolet,
	colorTealAccent,
	colorCrimson,
	colorSkyBlue,
	colorSlateGray,
}

func seriesColor(i int) lipgloss.Color {
	return seriesPalette[i%len(seriesPalette)]
}
