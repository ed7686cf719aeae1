// Package tuistyles holds the shared lipgloss palette and styles for the
// terminal UI. It lives apart from package tui so components and scenes can
// use it without importing the root model.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/output"
)

// Palette
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#5A4FCF")
	ColorAccent    = lipgloss.Color("#F4A261")
	ColorSuccess   = lipgloss.Color("#2A9D8F")
	ColorDanger    = lipgloss.Color("#E63946")
	ColorInfo      = lipgloss.Color("#4EA8DE")

	ColorBackground = lipgloss.Color("#1A1B26")
	ColorForeground = lipgloss.Color("#E0E0E0")
	ColorMuted      = lipgloss.Color("#737994")
	ColorBorder     = lipgloss.Color("#414868")

	// Band colours: best, middle, worst
	ColorBandBest   = lipgloss.Color("#2A9D8F")
	ColorBandMiddle = lipgloss.Color("#4EA8DE")
	ColorBandWorst  = lipgloss.Color("#E76F51")
	ColorBandFill   = lipgloss.Color("#3B4261")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
)

// MetricTrendStyle picks the positive or negative metric style
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the direction of a change
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders an amount in the given ISO currency
func FormatCurrency(amount float64, currency string) string {
	return output.FormatAmount(amount, currency)
}
