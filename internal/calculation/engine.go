package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// SamplerFactory builds the normal sampler for one run from its seed
type SamplerFactory func(seed int64) NormalSampler

// EngineConfig holds the knobs of a simulation run
type EngineConfig struct {
	NumSimulations int
	Seed           int64 // 0 picks a time-based seed per run
	Model          AssetModel
}

// DefaultEngineConfig returns the standard configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		NumSimulations: domain.DefaultNumSimulations,
		Model:          DefaultAssetModel(),
	}
}

// Engine orchestrates path simulation, aggregation and summary for one input.
// It holds no per-run state, so one Engine can serve many runs.
type Engine struct {
	Config     EngineConfig
	Logger     Logger
	NewSampler SamplerFactory
	now        func() time.Time
}

// NewEngine creates an engine with the default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig())
}

// NewEngineWithConfig creates an engine with the given configuration
func NewEngineWithConfig(cfg EngineConfig) *Engine {
	if cfg.NumSimulations == 0 {
		cfg.NumSimulations = domain.DefaultNumSimulations
	}
	if cfg.Model == (AssetModel{}) {
		cfg.Model = DefaultAssetModel()
	}
	return &Engine{
		Config:     cfg,
		Logger:     NopLogger{},
		NewSampler: func(seed int64) NormalSampler { return NewSeededSampler(seed) },
		now:        time.Now,
	}
}

// SetLogger installs a logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Params returns the portfolio parameters the engine uses for an equity percentage
func (e *Engine) Params(equityPercentage float64) domain.PortfolioParameters {
	return e.Config.Model.Params(equityPercentage / 100)
}

// Simulate runs the full pipeline for one input tuple
func (e *Engine) Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error) {
	seed := e.Config.Seed
	if seed == 0 {
		seed = e.now().UnixNano()
	}
	return e.SimulateWithSeed(ctx, in, seed)
}

// SimulateWithSeed runs the full pipeline with an explicit seed
func (e *Engine) SimulateWithSeed(ctx context.Context, in domain.SimulationInput, seed int64) (*domain.SimulationResult, error) {
	start := e.now()
	params := e.Params(in.EquityPercentage)

	e.Logger.Debugf("simulating %d paths over %d years (equity %.0f%%, mean %.4f, sd %.4f, seed %d)",
		e.Config.NumSimulations, in.HorizonYears, in.EquityPercentage, params.Mean, params.StdDev, seed)

	ensemble, err := RunMonteCarloSimulation(ctx, e.NewSampler(seed), e.Config.Model, e.Config.NumSimulations, in)
	if err != nil {
		e.Logger.Warnf("simulation aborted: %v", err)
		return nil, fmt.Errorf("failed to run simulation: %w", err)
	}

	bands := Aggregate(ensemble)
	summary := Summarize(in, params, bands)

	result := &domain.SimulationResult{
		Input:          in,
		Params:         params,
		Chart:          bands.Chart(),
		Bands:          bands,
		Summary:        summary,
		NumSimulations: e.Config.NumSimulations,
		Seed:           seed,
		GeneratedAt:    start,
		Duration:       e.now().Sub(start),
	}

	e.Logger.Infof("simulation complete in %s: median final value %.2f", result.Duration, summary.FinalValue)
	return result, nil
}
