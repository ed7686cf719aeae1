package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Mix",
		"Type",
		"Equity %",
		"Expected Return %",
		"Volatility %",
		"Final Worst",
		"Final Median",
		"Final Best",
		"Spread",
		"Total Return",
		"Median Diff from Base",
		"Median % Change",
		"Worst Diff from Base",
		"Spread Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, mixType string) []string {
	return []string{
		result.MixName,
		mixType,
		strconv.FormatFloat(result.EquityPercentage, 'f', -1, 64),
		result.ExpectedReturn.StringFixed(2),
		result.Volatility.StringFixed(2),
		result.FinalWorst.StringFixed(2),
		result.FinalMedian.StringFixed(2),
		result.FinalBest.StringFixed(2),
		result.Spread.StringFixed(2),
		result.TotalReturn.StringFixed(2),
		result.MedianDiffFromBase.StringFixed(2),
		result.MedianPctFromBase.StringFixed(2),
		result.WorstDiffFromBase.StringFixed(2),
		result.SpreadDiffFromBase.StringFixed(2),
	}
}
