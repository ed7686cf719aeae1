package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuistyles"
)

// ValueFormatter renders a slider value for display
type ValueFormatter func(float64) string

// ParameterSlider is one stepped input bound to a domain.Range
type ParameterSlider struct {
	Label       string
	Value       float64
	Range       domain.Range
	Format      ValueFormatter
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a slider over r, snapping value onto its grid
func NewParameterSlider(label string, r domain.Range, value float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  r.Snap(value),
		Range:  r,
		Format: func(v float64) string { return trimFloat(v) },
		Width:  30,
	}
}

// WithFormat sets how values and bounds are rendered
func (p *ParameterSlider) WithFormat(f ValueFormatter) *ParameterSlider {
	p.Format = f
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a help line shown under the slider
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment moves one step up. It reports whether the value changed.
func (p *ParameterSlider) Increment() bool {
	return p.SetValue(p.Value + p.Range.Step)
}

// Decrement moves one step down. It reports whether the value changed.
func (p *ParameterSlider) Decrement() bool {
	return p.SetValue(p.Value - p.Range.Step)
}

// SetValue snaps v onto the range and reports whether the value changed
func (p *ParameterSlider) SetValue(v float64) bool {
	snapped := p.Range.Snap(v)
	if snapped == p.Value {
		return false
	}
	p.Value = snapped
	return true
}

// Fraction returns the position of the value within the range, 0..1
func (p *ParameterSlider) Fraction() float64 {
	span := p.Range.Max - p.Range.Min
	if span <= 0 {
		return 0
	}
	return (p.Value - p.Range.Min) / span
}

// Render returns the label, value, bar and bounds on separate lines
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	marker := "  "
	if p.IsFocused {
		marker = tuistyles.StatusKeyStyle.Render("▸ ")
	}

	var b strings.Builder
	b.WriteString(marker + labelStyle.Render(p.Label) + "  " + valueStyle.Render(p.Format(p.Value)))
	b.WriteString("\n  ")
	b.WriteString(p.bar())

	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	b.WriteString("\n  ")
	b.WriteString(muted.Render(p.Format(p.Range.Min) + " ─ " + p.Format(p.Range.Max)))

	if p.Description != "" && p.IsFocused {
		b.WriteString("\n  ")
		b.WriteString(muted.Italic(true).Render(p.Description))
	}
	return b.String()
}

// bar draws the track with the thumb at the current position
func (p *ParameterSlider) bar() string {
	if p.Width < 2 {
		return ""
	}
	thumb := int(p.Fraction()*float64(p.Width-1) + 0.5)

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	return "[" +
		thumbStyle.Render(strings.Repeat("━", thumb)+"●") +
		tuistyles.SliderTrackStyle.Render(strings.Repeat("─", p.Width-1-thumb)) +
		"]"
}

// RenderCompact returns a single line with label and value
func (p *ParameterSlider) RenderCompact() string {
	return tuistyles.ParameterLabelStyle.Render(p.Label+":") + " " +
		tuistyles.ParameterValueStyle.Render(p.Format(p.Value))
}
