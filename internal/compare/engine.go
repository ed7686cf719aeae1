package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// CompareEngine runs one simulation per allocation mix and compares them
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseEquity float64   // equity percentage of the base mix
	Equities   []float64 // alternative equity percentages
	// Seed is shared by every mix so differences come from the allocation,
	// not the draw. Zero uses the engine's seed, or the clock if that is zero too.
	Seed int64
}

// Compare runs the base mix and each alternative with the other inputs held fixed
func (ce *CompareEngine) Compare(
	ctx context.Context,
	in domain.SimulationInput,
	options CompareOptions,
) (*ComparisonSet, error) {

	if options.BaseEquity < 0 || options.BaseEquity > 100 {
		return nil, fmt.Errorf("base equity percentage must be between 0 and 100, got %g", options.BaseEquity)
	}

	seed := options.Seed
	if seed == 0 {
		seed = ce.CalcEngine.Config.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	baseInput := in
	baseInput.EquityPercentage = options.BaseEquity
	baseSim, err := ce.CalcEngine.SimulateWithSeed(ctx, baseInput, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base mix: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseSim)

	alternatives := []ComparisonResult{}
	for _, equity := range options.Equities {
		if equity == options.BaseEquity {
			continue
		}
		if equity < 0 || equity > 100 {
			return nil, fmt.Errorf("equity percentage must be between 0 and 100, got %g", equity)
		}

		altInput := in
		altInput.EquityPercentage = equity
		altSim, err := ce.CalcEngine.SimulateWithSeed(ctx, altInput, seed)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate mix %s: %w", MixName(equity), err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altSim)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		Input:              baseInput,
		Seed:               seed,
		BaseMixName:        baseResult.MixName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
