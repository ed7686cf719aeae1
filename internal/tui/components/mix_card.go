package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/output"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuistyles"
)

// MixCard shows one allocation's horizon outcome in the comparison view
type MixCard struct {
	Result   compare.ComparisonResult
	IsBase   bool
	Currency string
	Width    int
}

// NewMixCard creates a card for one comparison row
func NewMixCard(r compare.ComparisonResult, currency string) *MixCard {
	return &MixCard{Result: r, Currency: currency, Width: 34}
}

// AsBase marks the card as the reference mix
func (c *MixCard) AsBase(base bool) *MixCard {
	c.IsBase = base
	return c
}

// WithWidth sets the card width
func (c *MixCard) WithWidth(width int) *MixCard {
	c.Width = width
	return c
}

// Render returns the bordered card
func (c *MixCard) Render() string {
	r := c.Result
	amount := func(f float64) string { return output.FormatAmount(f, c.Currency) }

	title := r.MixName + " equity/bonds"
	if c.IsBase {
		title += " (base)"
	}

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(
		"mean " + output.FormatPercentage(r.ExpectedReturn) + " • vol " + output.FormatPercentage(r.Volatility)))
	b.WriteString("\n\n")

	rows := []*MetricCard{
		NewMetricCard("Median", amount(r.FinalMedian.InexactFloat64())),
		NewMetricCard("Worst (10th)", amount(r.FinalWorst.InexactFloat64())),
		NewMetricCard("Best (90th)", amount(r.FinalBest.InexactFloat64())),
	}
	if !c.IsBase {
		tone := TonePositive
		if r.MedianDiffFromBase.IsNegative() {
			tone = ToneNegative
		}
		rows = append(rows, NewMetricCard("vs base",
			tuistyles.TrendIndicator(!r.MedianDiffFromBase.IsNegative())+" "+
				amount(r.MedianDiffFromBase.Abs().InexactFloat64())).WithTone(tone))
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(row.RenderCompact())
	}

	border := tuistyles.ColorBorder
	if c.IsBase {
		border = tuistyles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(c.Width).
		Render(b.String())
}
