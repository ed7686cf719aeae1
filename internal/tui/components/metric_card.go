package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/output"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuistyles"
)

// Tone colours a metric value
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

// MetricCard displays one labelled figure
type MetricCard struct {
	Label       string
	Value       string
	Tone        Tone
	Description string
	Width       int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithTone sets the value colour
func (m *MetricCard) WithTone(t Tone) *MetricCard {
	m.Tone = t
	return m
}

// WithDescription adds a subtitle under the value
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) valueStyle() lipgloss.Style {
	switch m.Tone {
	case TonePositive:
		return tuistyles.MetricValueStyle.Foreground(tuistyles.ColorSuccess)
	case ToneNegative:
		return tuistyles.MetricValueStyle.Foreground(tuistyles.ColorDanger)
	default:
		return tuistyles.MetricValueStyle
	}
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + m.valueStyle().Render(m.Value)
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns "label: value" on one line
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + m.valueStyle().Render(m.Value)
}

// SummaryCards builds the four summary figures shown beside the chart
func SummaryCards(s domain.Summary, currency string) []*MetricCard {
	returnTone := TonePositive
	if s.TotalReturn < 0 {
		returnTone = ToneNegative
	}
	return []*MetricCard{
		NewMetricCard("Total Investment", output.FormatAmount(s.TotalInvestment, currency)).
			WithDescription("initial + contributions"),
		NewMetricCard("Final Value", output.FormatAmount(s.FinalValue, currency)).
			WithDescription("middle case at horizon"),
		NewMetricCard("Total Return", output.FormatAmount(s.TotalReturn, currency)).
			WithTone(returnTone),
		NewMetricCard("Expected Yield", output.FormatPercent(s.ExpectedYield)).
			WithDescription("modelled annual mean"),
	}
}

// MetricGrid lays cards out in rows of the given width
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		row := make([]string, 0, end-start)
		for _, card := range cards[start:end] {
			row = append(row, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
