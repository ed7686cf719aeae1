package calculation

import (
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// Summarize derives the scalar figures from the input and the aggregated bands.
//
// FinalValue is the median at the horizon in full currency units. ExpectedYield
// reports the modelled mean return as a percentage, not a realised CAGR.
func Summarize(in domain.SimulationInput, params domain.PortfolioParameters, bands domain.Bands) domain.Summary {
	totalInvestment := in.InitialInvestment + in.YearlyContribution()*float64(in.HorizonYears)

	var finalValue float64
	if in.HorizonYears < len(bands.Middle) {
		finalValue = bands.Middle[in.HorizonYears]
	}

	return domain.Summary{
		TotalInvestment: totalInvestment,
		FinalValue:      finalValue,
		TotalReturn:     finalValue - totalInvestment,
		ExpectedYield:   params.Mean * 100,
	}
}
