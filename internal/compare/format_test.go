package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/shopspring/decimal"
)

func testComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		Input:       domain.SimulationInput{InitialInvestment: 1_000_000, EquityPercentage: 60, HorizonYears: 20},
		Seed:        42,
		BaseMixName: "60/40",
		ConfigPath:  "/path/to/forecast.yaml",
		BaseResult: &ComparisonResult{
			MixName:          "60/40",
			EquityPercentage: 60,
			ExpectedReturn:   decimal.NewFromInt(5),
			Volatility:       decimal.NewFromFloat(12.4),
			FinalWorst:       decimal.NewFromInt(1_500_000),
			FinalMedian:      decimal.NewFromInt(2_600_000),
			FinalBest:        decimal.NewFromInt(4_200_000),
			Spread:           decimal.NewFromInt(2_700_000),
			TotalReturn:      decimal.NewFromInt(1_600_000),
			Result:           &domain.SimulationResult{Chart: domain.ChartSeries{Years: []int{0, 1}, MiddleCase: []float64{1, 1.05}}},
		},
		AlternativeResults: []ComparisonResult{
			{
				MixName:            "100/0",
				EquityPercentage:   100,
				ExpectedReturn:     decimal.NewFromInt(7),
				Volatility:         decimal.NewFromInt(18),
				FinalWorst:         decimal.NewFromInt(1_300_000),
				FinalMedian:        decimal.NewFromInt(3_500_000),
				FinalBest:          decimal.NewFromInt(7_900_000),
				Spread:             decimal.NewFromInt(6_600_000),
				TotalReturn:        decimal.NewFromInt(2_500_000),
				MedianDiffFromBase: decimal.NewFromInt(900_000),
				MedianPctFromBase:  decimal.NewFromFloat(34.62),
				WorstDiffFromBase:  decimal.NewFromInt(-200_000),
				SpreadDiffFromBase: decimal.NewFromInt(3_900_000),
			},
		},
		Recommendations: []string{
			"Best Median: 100/0 ends $900000 higher than the base mix in the median case",
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{Currency: "USD"}

	result := formatter.Format(testComparisonSet())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}
	for _, want := range []string{
		"ALLOCATION COMPARISON",
		"Base Mix: 60/40",
		"Configuration: /path/to/forecast.yaml",
		"60/40 (base)",
		"100/0",
		"$2.60M",
		"Median Outcome:   +$900.0K (34.6%)",
		"Downside (10th):  -$200.0K",
		"Spread:           -$3.90M",
		"RECOMMENDATIONS",
	} {
		if !contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}
	compSet := testComparisonSet()
	compSet.AlternativeResults = nil
	compSet.Recommendations = nil

	result := formatter.Format(compSet)

	if contains(result, "COMPARISON TO BASE") {
		t.Error("Did not expect comparison section without alternatives")
	}
	if contains(result, "RECOMMENDATIONS") {
		t.Error("Did not expect recommendations section")
	}
}

func TestTableFormatter_Currency(t *testing.T) {
	formatter := &TableFormatter{Currency: "eur"}
	if got := formatter.symbol(); got != "€" {
		t.Errorf("Expected euro symbol, got %q", got)
	}
	formatter.Currency = "???"
	if got := formatter.symbol(); got != "$" {
		t.Errorf("Expected fallback symbol, got %q", got)
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.FormatCompact(testComparisonSet())

	if result != "Base: 60/40 | 100/0: +$900.0K" {
		t.Errorf("Unexpected compact output: %s", result)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.Format(testComparisonSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(result)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(records))
	}
	if records[1][0] != "60/40" || records[1][1] != "base" {
		t.Errorf("Unexpected base row: %v", records[1])
	}
	if records[2][1] != "alternative" || records[2][6] != "3500000.00" {
		t.Errorf("Unexpected alternative row: %v", records[2])
	}
	if records[2][10] != "900000.00" {
		t.Errorf("Expected median diff 900000.00, got %s", records[2][10])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{Pretty: true}

	result, err := formatter.Format(testComparisonSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["baseMixName"] != "60/40" {
		t.Errorf("Expected baseMixName 60/40, got %v", decoded["baseMixName"])
	}
	if _, ok := decoded["series"]; ok {
		t.Error("Did not expect series without IncludeSeries")
	}
	if !contains(result, "\n  ") {
		t.Error("Expected indented output")
	}
}

func TestJSONFormatter_IncludeSeries(t *testing.T) {
	formatter := &JSONFormatter{IncludeSeries: true}

	result, err := formatter.Format(testComparisonSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded struct {
		Series map[string]domain.ChartSeries `json:"series"`
	}
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded.Series) != 1 {
		t.Fatalf("Expected series only for mixes with results, got %d", len(decoded.Series))
	}
	if got := decoded.Series["60/40"].MiddleCase; len(got) != 2 || got[1] != 1.05 {
		t.Errorf("Unexpected base series: %v", got)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
