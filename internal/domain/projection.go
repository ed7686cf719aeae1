package domain

import (
	"time"
)

const (
	// DefaultNumSimulations is the number of independent wealth paths per run
	DefaultNumSimulations = 10000

	// DisplayScale converts currency units into the millions shown on charts
	DisplayScale = 1_000_000.0

	// Band quantiles, selected by floor-truncated nearest rank
	WorstQuantile  = 0.10
	MiddleQuantile = 0.50
	BestQuantile   = 0.90

	// MonthsPerYear turns a monthly contribution into a yearly one
	MonthsPerYear = 12
)

// SimulationInput is one committed set of user parameters.
// It is a comparable value so two tuples can be tested with ==.
type SimulationInput struct {
	InitialInvestment   float64 `json:"initialInvestment" yaml:"initial_investment"`
	MonthlyContribution float64 `json:"monthlyContribution" yaml:"monthly_contribution"`
	EquityPercentage    float64 `json:"equityPercentage" yaml:"equity_percentage"`
	HorizonYears        int     `json:"horizonYears" yaml:"horizon_years"`
}

// EquityFraction returns the equity allocation in [0,1]
func (in SimulationInput) EquityFraction() float64 {
	return in.EquityPercentage / 100
}

// YearlyContribution returns the monthly contribution scaled to a full year
func (in SimulationInput) YearlyContribution() float64 {
	return in.MonthlyContribution * MonthsPerYear
}

// PortfolioParameters holds the expected annual return and volatility of a mix
type PortfolioParameters struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdDev" yaml:"std_dev"`
}

// PathEnsemble holds every simulated path value, indexed [year][path].
// Year 0 is the starting capital.
type PathEnsemble [][]float64

// Years returns the horizon covered by the ensemble (slices minus year 0)
func (pe PathEnsemble) Years() int {
	if len(pe) == 0 {
		return 0
	}
	return len(pe) - 1
}

// Paths returns the number of paths per year
func (pe PathEnsemble) Paths() int {
	if len(pe) == 0 {
		return 0
	}
	return len(pe[0])
}

// Bands are the three representative yearly sequences in full currency units
type Bands struct {
	Worst  []float64 `json:"worst"`
	Middle []float64 `json:"middle"`
	Best   []float64 `json:"best"`
}

// Chart scales the bands into the millions-denominated series used by charts
func (b Bands) Chart() ChartSeries {
	n := len(b.Middle)
	cs := ChartSeries{
		Years:      make([]int, n),
		BestCase:   make([]float64, n),
		MiddleCase: make([]float64, n),
		WorstCase:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		cs.Years[i] = i
		cs.BestCase[i] = b.Best[i] / DisplayScale
		cs.MiddleCase[i] = b.Middle[i] / DisplayScale
		cs.WorstCase[i] = b.Worst[i] / DisplayScale
	}
	return cs
}

// ChartSeries is what the chart collaborator consumes. Values are in millions.
type ChartSeries struct {
	Years      []int     `json:"years"`
	BestCase   []float64 `json:"bestCase"`
	MiddleCase []float64 `json:"middleCase"`
	WorstCase  []float64 `json:"worstCase"`
}

// Summary holds the scalar figures shown beside the chart, in full currency units.
//
// ExpectedYield is the portfolio's modelled mean return as a percentage. It is
// not a realised or contribution-adjusted compound annual growth rate.
type Summary struct {
	TotalInvestment float64 `json:"totalInvestment"`
	FinalValue      float64 `json:"finalValue"`
	TotalReturn     float64 `json:"totalReturn"`
	ExpectedYield   float64 `json:"expectedYield"`
}

// SimulationResult is produced once per committed input and never mutated
type SimulationResult struct {
	Input          SimulationInput     `json:"input"`
	Params         PortfolioParameters `json:"params"`
	Chart          ChartSeries         `json:"chart"`
	Bands          Bands               `json:"-"`
	Summary        Summary             `json:"summary"`
	NumSimulations int                 `json:"numSimulations"`
	Seed           int64               `json:"seed"`
	GeneratedAt    time.Time           `json:"generatedAt"`
	Duration       time.Duration       `json:"duration"`
}

// FinalBands returns the worst/middle/best values at the horizon
func (r *SimulationResult) FinalBands() (worst, middle, best float64) {
	n := len(r.Bands.Middle)
	if n == 0 {
		return 0, 0, 0
	}
	return r.Bands.Worst[n-1], r.Bands.Middle[n-1], r.Bands.Best[n-1]
}
