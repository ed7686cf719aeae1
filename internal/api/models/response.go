package models

import (
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/output"
)

// SimulateResponse is the result of one simulation run
type SimulateResponse struct {
	Chart          domain.ChartSeries         `json:"chart"`
	Summary        domain.Summary             `json:"summary"`
	Params         domain.PortfolioParameters `json:"params"`
	Seed           int64                      `json:"seed"`
	NumSimulations int                        `json:"num_simulations"`
	DurationMS     int64                      `json:"duration_ms"`
	Currency       string                     `json:"currency"`
	Display        SummaryDisplay             `json:"display"`
}

// SummaryDisplay carries the summary amounts formatted in the server currency
type SummaryDisplay struct {
	TotalInvestment string `json:"totalInvestment"`
	FinalValue      string `json:"finalValue"`
	TotalReturn     string `json:"totalReturn"`
	ExpectedYield   string `json:"expectedYield"`
}

// NewSimulateResponse builds the response body from a result
func NewSimulateResponse(r *domain.SimulationResult, currency string) SimulateResponse {
	return SimulateResponse{
		Chart:          r.Chart,
		Summary:        r.Summary,
		Params:         r.Params,
		Seed:           r.Seed,
		NumSimulations: r.NumSimulations,
		DurationMS:     r.Duration.Milliseconds(),
		Currency:       currency,
		Display: SummaryDisplay{
			TotalInvestment: output.FormatAmount(r.Summary.TotalInvestment, currency),
			FinalValue:      output.FormatAmount(r.Summary.FinalValue, currency),
			TotalReturn:     output.FormatAmount(r.Summary.TotalReturn, currency),
			ExpectedYield:   output.FormatPercent(r.Summary.ExpectedYield),
		},
	}
}

// ParamsEntry is one row of the interpolated parameter table
type ParamsEntry struct {
	EquityPercentage float64 `json:"equity_percentage"`
	domain.PortfolioParameters
}

// ParamsResponse lists interpolated parameters
type ParamsResponse struct {
	Params []ParamsEntry `json:"params"`
}

// RangesResponse describes the accepted inputs and their defaults
type RangesResponse struct {
	Ranges   domain.InputRanges     `json:"ranges"`
	Defaults domain.SimulationInput `json:"defaults"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
