package models

import "github.com/rgehrsitz/mcfolio/internal/domain"

// SimulateRequest is the body of POST /api/v1/simulate.
// Pointers distinguish a missing field from a legitimate zero.
type SimulateRequest struct {
	InitialInvestment   *float64 `json:"initial_investment" binding:"required"`
	MonthlyContribution *float64 `json:"monthly_contribution" binding:"required"`
	EquityPercentage    *float64 `json:"equity_percentage" binding:"required"`
	HorizonYears        *int     `json:"horizon_years" binding:"required"`
	Seed                *int64   `json:"seed,omitempty"`
}

// ToInput converts a bound request into the engine's input tuple
func (r SimulateRequest) ToInput() domain.SimulationInput {
	return domain.SimulationInput{
		InitialInvestment:   *r.InitialInvestment,
		MonthlyContribution: *r.MonthlyContribution,
		EquityPercentage:    *r.EquityPercentage,
		HorizonYears:        *r.HorizonYears,
	}
}

// CompareRequest is the body of POST /api/v1/compare
type CompareRequest struct {
	SimulateRequest
	Equities []float64 `json:"equities" binding:"required,min=1"`
}
