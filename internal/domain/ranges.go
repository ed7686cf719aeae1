package domain

import "math"

// Range describes one slider on the parameter surface
type Range struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
	Unit string  `json:"unit"`
}

// Contains reports whether v is within [Min, Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// OnStep reports whether v sits on a step boundary counted from Min
func (r Range) OnStep(v float64) bool {
	if r.Step <= 0 {
		return true
	}
	steps := (v - r.Min) / r.Step
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

// Snap rounds v to the nearest step and clamps it into the range
func (r Range) Snap(v float64) float64 {
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// InputRanges bounds the four user inputs
type InputRanges struct {
	InitialInvestment   Range `json:"initialInvestment"`
	MonthlyContribution Range `json:"monthlyContribution"`
	EquityPercentage    Range `json:"equityPercentage"`
	HorizonYears        Range `json:"horizonYears"`
}

// DefaultInputRanges returns the ranges exposed by the parameter surface
func DefaultInputRanges() InputRanges {
	return InputRanges{
		InitialInvestment:   Range{Name: "initial_investment", Min: 500_000, Max: 10_000_000, Step: 50_000, Unit: "currency"},
		MonthlyContribution: Range{Name: "monthly_contribution", Min: 0, Max: 50_000, Step: 1_000, Unit: "currency"},
		EquityPercentage:    Range{Name: "equity_percentage", Min: 0, Max: 100, Step: 5, Unit: "%"},
		HorizonYears:        Range{Name: "horizon_years", Min: 5, Max: 30, Step: 5, Unit: "years"},
	}
}

// DefaultInput is the tuple a fresh session starts from
func DefaultInput() SimulationInput {
	return SimulationInput{
		InitialInvestment:   1_000_000,
		MonthlyContribution: 10_000,
		EquityPercentage:    60,
		HorizonYears:        20,
	}
}
