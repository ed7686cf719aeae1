package compare

import (
	"fmt"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds the metrics of one allocation mix
type ComparisonResult struct {
	MixName          string                   `json:"mixName"`
	EquityPercentage float64                  `json:"equityPercentage"`
	Result           *domain.SimulationResult `json:"-"`

	// Key Metrics
	ExpectedReturn decimal.Decimal `json:"expectedReturn"` // percent
	Volatility     decimal.Decimal `json:"volatility"`     // percent
	FinalMedian    decimal.Decimal `json:"finalMedian"`
	FinalWorst     decimal.Decimal `json:"finalWorst"`
	FinalBest      decimal.Decimal `json:"finalBest"`
	TotalReturn    decimal.Decimal `json:"totalReturn"`
	Spread         decimal.Decimal `json:"spread"` // best minus worst at the horizon

	// Comparison to Base
	MedianDiffFromBase decimal.Decimal `json:"medianDiffFromBase"`
	MedianPctFromBase  decimal.Decimal `json:"medianPctFromBase"`
	WorstDiffFromBase  decimal.Decimal `json:"worstDiffFromBase"`
	SpreadDiffFromBase decimal.Decimal `json:"spreadDiffFromBase"`
}

// ComparisonSet is a base mix plus the alternatives measured against it
type ComparisonSet struct {
	Input              domain.SimulationInput `json:"input"`
	Seed               int64                  `json:"seed"`
	BaseMixName        string                 `json:"baseMixName"`
	BaseResult         *ComparisonResult      `json:"baseResult"`
	AlternativeResults []ComparisonResult     `json:"alternativeResults"`
	Recommendations    []string               `json:"recommendations"`
	ConfigPath         string                 `json:"configPath"`
}

// All returns the base followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	all := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		all = append(all, *cs.BaseResult)
	}
	return append(all, cs.AlternativeResults...)
}

// MixName labels an allocation as equity/bond, e.g. "60/40"
func MixName(equityPercentage float64) string {
	return fmt.Sprintf("%.0f/%.0f", equityPercentage, 100-equityPercentage)
}

// MetricsCalculator extracts key metrics from simulation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one simulation result
func (mc *MetricsCalculator) CalculateMetrics(result *domain.SimulationResult) ComparisonResult {
	worst, middle, best := result.FinalBands()
	hundred := decimal.NewFromInt(100)

	return ComparisonResult{
		MixName:          MixName(result.Input.EquityPercentage),
		EquityPercentage: result.Input.EquityPercentage,
		Result:           result,
		ExpectedReturn:   decimal.NewFromFloat(result.Params.Mean).Mul(hundred),
		Volatility:       decimal.NewFromFloat(result.Params.StdDev).Mul(hundred),
		FinalMedian:      decimal.NewFromFloat(middle),
		FinalWorst:       decimal.NewFromFloat(worst),
		FinalBest:        decimal.NewFromFloat(best),
		TotalReturn:      decimal.NewFromFloat(result.Summary.TotalReturn),
		Spread:           decimal.NewFromFloat(best - worst),
	}
}

// CalculateComparison computes deltas between an alternative and the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.MedianDiffFromBase = alt.FinalMedian.Sub(base.FinalMedian)

	if !base.FinalMedian.IsZero() {
		alt.MedianPctFromBase = alt.MedianDiffFromBase.
			Div(base.FinalMedian).
			Mul(decimal.NewFromInt(100))
	}

	alt.WorstDiffFromBase = alt.FinalWorst.Sub(base.FinalWorst)
	alt.SpreadDiffFromBase = alt.Spread.Sub(base.Spread)

	return alt
}

// GenerateRecommendations picks the strongest mix on median outcome,
// downside protection and dispersion
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}

	bestMedian := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalMedian.GreaterThan(bestMedian.FinalMedian) {
			bestMedian = alt
		}
	}
	if bestMedian != compSet.BaseResult {
		diff := bestMedian.FinalMedian.Sub(compSet.BaseResult.FinalMedian)
		recommendations = append(recommendations,
			"Best Median: "+bestMedian.MixName+" ends $"+diff.StringFixed(0)+
				" higher than the base mix in the median case")
	}

	bestWorst := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalWorst.GreaterThan(bestWorst.FinalWorst) {
			bestWorst = alt
		}
	}
	if bestWorst != compSet.BaseResult {
		diff := bestWorst.FinalWorst.Sub(compSet.BaseResult.FinalWorst)
		recommendations = append(recommendations,
			"Best Downside: "+bestWorst.MixName+" raises the 10th percentile outcome by $"+diff.StringFixed(0))
	}

	narrowest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Spread.LessThan(narrowest.Spread) {
			narrowest = alt
		}
	}
	if narrowest != compSet.BaseResult {
		diff := compSet.BaseResult.Spread.Sub(narrowest.Spread)
		recommendations = append(recommendations,
			"Narrowest Range: "+narrowest.MixName+" tightens the 10th-90th percentile spread by $"+diff.StringFixed(0))
	}

	return recommendations
}
