package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVSummarizer writes a single summary row
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"InitialInvestment", "MonthlyContribution", "EquityPercentage", "HorizonYears",
		"TotalInvestment", "FinalValue", "TotalReturn", "ExpectedYield",
		"FinalWorst", "FinalBest", "Simulations", "Seed",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	worst, _, best := result.FinalBands()
	row := []string{
		fixed(result.Input.InitialInvestment),
		fixed(result.Input.MonthlyContribution),
		fixed(result.Input.EquityPercentage),
		strconv.Itoa(result.Input.HorizonYears),
		fixed(result.Summary.TotalInvestment),
		fixed(result.Summary.FinalValue),
		fixed(result.Summary.TotalReturn),
		fixed(result.Summary.ExpectedYield),
		fixed(worst),
		fixed(best),
		strconv.Itoa(result.NumSimulations),
		strconv.FormatInt(result.Seed, 10),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DetailedCSVFormatter writes one row per year with full-unit and chart-scale bands
type DetailedCSVFormatter struct{}

func (d DetailedCSVFormatter) Name() string { return "detailed-csv" }

func (d DetailedCSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Worst", "Middle", "Best", "WorstM", "MiddleM", "BestM"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range result.Bands.Middle {
		row := []string{
			strconv.Itoa(i),
			fixed(result.Bands.Worst[i]),
			fixed(result.Bands.Middle[i]),
			fixed(result.Bands.Best[i]),
			strconv.FormatFloat(result.Chart.WorstCase[i], 'f', 6, 64),
			strconv.FormatFloat(result.Chart.MiddleCase[i], 'f', 6, 64),
			strconv.FormatFloat(result.Chart.BestCase[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
