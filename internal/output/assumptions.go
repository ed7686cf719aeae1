package output

import (
	"fmt"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions rendered in detailed outputs
var DefaultAssumptions = []string{
	"Annual returns are drawn independently from a normal distribution each year",
	"Mean and volatility interpolate linearly between all-bond (2% / 4%) and all-equity (7% / 18%) anchors",
	"Twelve monthly contributions are added once at the end of each year",
	"Portfolio value never falls below zero",
	"Bands are the 10th, 50th and 90th percentile of all paths, taken independently each year",
	"Expected yield is the modelled mean return, not a realised growth rate",
}

// ResultAssumptions returns the default assumptions plus the run-specific parameters
func ResultAssumptions(result *domain.SimulationResult) []string {
	out := append([]string(nil), DefaultAssumptions...)
	out = append(out,
		fmt.Sprintf("Portfolio: %.0f%% equity, mean return %.2f%%, volatility %.2f%%",
			result.Input.EquityPercentage, result.Params.Mean*100, result.Params.StdDev*100),
		fmt.Sprintf("%d simulated paths, seed %d", result.NumSimulations, result.Seed),
	)
	return out
}
