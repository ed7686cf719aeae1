package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// ConsoleFormatter renders a short summary block
type ConsoleFormatter struct {
	Currency string
}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	cur := c.Currency

	fmt.Fprintln(&buf, "PORTFOLIO FORECAST SUMMARY")
	fmt.Fprintln(&buf, "==========================")
	fmt.Fprintf(&buf, "Allocation: %.0f%% equity over %d years\n", result.Input.EquityPercentage, result.Input.HorizonYears)
	fmt.Fprintf(&buf, "Total Investment: %s\n", FormatAmount(result.Summary.TotalInvestment, cur))
	fmt.Fprintf(&buf, "Median Final Value: %s\n", FormatAmount(result.Summary.FinalValue, cur))
	fmt.Fprintf(&buf, "Total Return: %s\n", FormatAmount(result.Summary.TotalReturn, cur))
	fmt.Fprintf(&buf, "Expected Yield: %s\n", FormatPercent(result.Summary.ExpectedYield))

	worst, _, best := result.FinalBands()
	fmt.Fprintf(&buf, "Range (10th-90th): %s to %s\n", FormatAmount(worst, cur), FormatAmount(best, cur))

	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter renders the full report with a year-by-year band table
type ConsoleVerboseFormatter struct {
	Currency string
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	cur := c.Currency
	rule := strings.Repeat("=", 81)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "MONTE CARLO PORTFOLIO FORECAST")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range ResultAssumptions(result) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INPUTS")
	fmt.Fprintln(&buf, "======")
	fmt.Fprintf(&buf, "Initial Investment:    %s\n", FormatAmount(result.Input.InitialInvestment, cur))
	fmt.Fprintf(&buf, "Monthly Contribution:  %s\n", FormatAmount(result.Input.MonthlyContribution, cur))
	fmt.Fprintf(&buf, "Equity Allocation:     %.0f%%\n", result.Input.EquityPercentage)
	fmt.Fprintf(&buf, "Horizon:               %d years\n", result.Input.HorizonYears)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, "=======")
	fmt.Fprintf(&buf, "Total Investment:      %s\n", FormatAmount(result.Summary.TotalInvestment, cur))
	fmt.Fprintf(&buf, "Median Final Value:    %s\n", FormatAmount(result.Summary.FinalValue, cur))
	fmt.Fprintf(&buf, "Total Return:          %s\n", FormatAmount(result.Summary.TotalReturn, cur))
	fmt.Fprintf(&buf, "Expected Yield:        %s\n", FormatPercent(result.Summary.ExpectedYield))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROJECTED VALUE BY YEAR")
	fmt.Fprintln(&buf, strings.Repeat("-", 81))
	fmt.Fprintf(&buf, "%-6s %24s %24s %24s\n", "Year", "Worst (10th)", "Median (50th)", "Best (90th)")
	fmt.Fprintln(&buf, strings.Repeat("-", 81))
	for i := range result.Bands.Middle {
		fmt.Fprintf(&buf, "%-6d %24s %24s %24s\n", i,
			FormatAmount(result.Bands.Worst[i], cur),
			FormatAmount(result.Bands.Middle[i], cur),
			FormatAmount(result.Bands.Best[i], cur))
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 81))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Generated %s in %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05"), result.Duration)

	return buf.Bytes(), nil
}
