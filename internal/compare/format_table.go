package compare

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct {
	Currency string
}

// Format generates a formatted table comparing allocation mixes
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("ALLOCATION COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Mix: %s (equity/bond)\n", compSet.BaseMixName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString(fmt.Sprintf("Horizon: %d years, seed %d\n", compSet.Input.HorizonYears, compSet.Seed))
	sb.WriteString("\n")

	nameWidth := 14
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Mix",
		numWidth, "Mean / Vol",
		numWidth, "Worst",
		numWidth, "Median",
		numWidth, "Best",
		numWidth, "Spread"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.MixName))

			sb.WriteString(fmt.Sprintf("  Median Outcome:   %s%s%s (%s%%)\n",
				tf.deltaSymbol(alt.MedianDiffFromBase),
				tf.symbol(),
				tf.formatDecimal(alt.MedianDiffFromBase.Abs()),
				alt.MedianPctFromBase.StringFixed(1)))

			if !alt.WorstDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Downside (10th):  %s%s%s\n",
					tf.deltaSymbol(alt.WorstDiffFromBase),
					tf.symbol(),
					tf.formatDecimal(alt.WorstDiffFromBase.Abs())))
			}

			if !alt.SpreadDiffFromBase.IsZero() {
				// A narrower spread is better
				sb.WriteString(fmt.Sprintf("  Spread:           %s%s%s\n",
					tf.deltaSymbol(alt.SpreadDiffFromBase.Neg()),
					tf.symbol(),
					tf.formatDecimal(alt.SpreadDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single mix row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.MixName
	if isBase {
		name += " (base)"
	}

	meanVol := result.ExpectedReturn.StringFixed(1) + "/" + result.Volatility.StringFixed(1) + "%"

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, meanVol,
		numWidth, tf.symbol()+tf.formatDecimal(result.FinalWorst),
		numWidth, tf.symbol()+tf.formatDecimal(result.FinalMedian),
		numWidth, tf.symbol()+tf.formatDecimal(result.FinalBest),
		numWidth, tf.symbol()+tf.formatDecimal(result.Spread))
}

// symbol returns the currency grapheme, "$" when unknown
func (tf *TableFormatter) symbol() string {
	if tf.Currency == "" {
		return "$"
	}
	cur := money.GetCurrency(strings.ToUpper(tf.Currency))
	if cur == nil || cur.Grapheme == "" {
		return "$"
	}
	return cur.Grapheme
}

// formatDecimal formats a decimal for display (in thousands or millions)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas (positive is green concept)
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each mix
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseMixName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.MedianDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+%s%s", tf.symbol(), tf.formatDecimal(alt.MedianDiffFromBase))
		} else if alt.MedianDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-%s%s", tf.symbol(), tf.formatDecimal(alt.MedianDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.MixName, change))
	}

	return sb.String()
}
