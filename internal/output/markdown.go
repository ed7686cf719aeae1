package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// MarkdownFormatter renders the report as Markdown. With Render set the
// Markdown is passed through glamour for terminal display.
type MarkdownFormatter struct {
	Currency string
	Render   bool
	// WordWrap applies to rendered output; zero uses 100 columns
	WordWrap int
}

func (m MarkdownFormatter) Name() string {
	if m.Render {
		return "markdown-terminal"
	}
	return "markdown"
}

func (m MarkdownFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	md := m.markdown(result)
	if !m.Render {
		return md, nil
	}

	wrap := m.WordWrap
	if wrap == 0 {
		wrap = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.RenderBytes(md)
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func (m MarkdownFormatter) markdown(result *domain.SimulationResult) []byte {
	var buf bytes.Buffer
	cur := m.Currency

	fmt.Fprintln(&buf, "# Portfolio Forecast")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%.0f%% equity, %d years, %d simulated paths (seed %d).\n",
		result.Input.EquityPercentage, result.Input.HorizonYears, result.NumSimulations, result.Seed)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Summary")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Metric | Value |")
	fmt.Fprintln(&buf, "|---|---:|")
	fmt.Fprintf(&buf, "| Initial investment | %s |\n", FormatAmount(result.Input.InitialInvestment, cur))
	fmt.Fprintf(&buf, "| Monthly contribution | %s |\n", FormatAmount(result.Input.MonthlyContribution, cur))
	fmt.Fprintf(&buf, "| Total investment | %s |\n", FormatAmount(result.Summary.TotalInvestment, cur))
	fmt.Fprintf(&buf, "| Median final value | %s |\n", FormatAmount(result.Summary.FinalValue, cur))
	fmt.Fprintf(&buf, "| Total return | %s |\n", FormatAmount(result.Summary.TotalReturn, cur))
	fmt.Fprintf(&buf, "| Expected yield | %s |\n", FormatPercent(result.Summary.ExpectedYield))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Projected value (millions)")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Year | Worst | Median | Best |")
	fmt.Fprintln(&buf, "|---:|---:|---:|---:|")
	for i, year := range result.Chart.Years {
		fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", year,
			FormatMillions(result.Chart.WorstCase[i]),
			FormatMillions(result.Chart.MiddleCase[i]),
			FormatMillions(result.Chart.BestCase[i]))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range ResultAssumptions(result) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}

	return buf.Bytes()
}
