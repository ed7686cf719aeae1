package calculation

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// cancelCheckInterval is how many paths run between context checks
const cancelCheckInterval = 1024

// RunMonteCarloSimulation simulates numSims independent yearly-compounding paths.
//
// Every path starts at initial. Each year draws a fresh return r, grows the
// balance by (1+r), adds the yearly contribution and floors the result at zero.
// The returned ensemble is indexed [year][path] and has years+1 slices.
func RunMonteCarloSimulation(ctx context.Context, sampler NormalSampler, model AssetModel, numSims int, in domain.SimulationInput) (domain.PathEnsemble, error) {
	if numSims <= 0 {
		return nil, fmt.Errorf("number of simulations must be positive, got %d", numSims)
	}
	if in.HorizonYears <= 0 {
		return nil, fmt.Errorf("horizon must be at least one year, got %d", in.HorizonYears)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	params := model.Params(in.EquityFraction())
	yearlyContribution := in.YearlyContribution()

	ensemble := make(domain.PathEnsemble, in.HorizonYears+1)
	for year := range ensemble {
		ensemble[year] = make([]float64, numSims)
	}

	mean, stdDev := params.Mean, params.StdDev
	for path := 0; path < numSims; path++ {
		if path%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		amount := in.InitialInvestment
		ensemble[0][path] = amount
		for year := 1; year <= in.HorizonYears; year++ {
			r := sampler.Sample(mean, stdDev)
			amount = math.Max(0, amount*(1+r)+yearlyContribution)
			ensemble[year][path] = amount
		}
	}

	return ensemble, nil
}

// Aggregate reduces the ensemble to worst/middle/best yearly sequences.
// Each year is sorted ascending (on a copy) and sampled at floor(N*q).
func Aggregate(ensemble domain.PathEnsemble) domain.Bands {
	years := len(ensemble)
	bands := domain.Bands{
		Worst:  make([]float64, years),
		Middle: make([]float64, years),
		Best:   make([]float64, years),
	}

	var sorted []float64
	for year, values := range ensemble {
		sorted = append(sorted[:0], values...)
		slices.Sort(sorted)

		bands.Worst[year] = nearestRank(sorted, domain.WorstQuantile)
		bands.Middle[year] = nearestRank(sorted, domain.MiddleQuantile)
		bands.Best[year] = nearestRank(sorted, domain.BestQuantile)
	}

	return bands
}

// nearestRank picks sorted[floor(len*q)] without interpolation
func nearestRank(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Floor(float64(len(sorted)) * q))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
