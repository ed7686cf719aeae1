package main

import (
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/config"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// addInputFlags registers the flags that override forecast file values.
// equityFlag names the flag carrying the equity allocation.
func addInputFlags(cmd *cobra.Command, equityFlag string) {
	def := domain.DefaultInput()
	cmd.Flags().Float64("initial", def.InitialInvestment, "Initial investment")
	cmd.Flags().Float64("monthly", def.MonthlyContribution, "Monthly contribution")
	cmd.Flags().Float64(equityFlag, def.EquityPercentage, "Equity allocation in percent (0-100)")
	cmd.Flags().Int("years", def.HorizonYears, "Projection horizon in years")
	cmd.Flags().Int("simulations", domain.DefaultNumSimulations, "Number of simulated paths")
	cmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().String("currency", "", "ISO currency code for reports (default USD)")
	cmd.Flags().Bool("lenient", false, "Skip slider range and step checks")
	cmd.Flags().Bool("debug", false, "Enable debug logging of simulation runs")
}

// loadConfiguration reads the optional forecast file, layers any explicitly
// set flags on top and validates the result.
func loadConfiguration(cmd *cobra.Command, args []string, equityFlag string) (*domain.Configuration, error) {
	cfg := config.DefaultConfiguration()
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		if cfg, err = config.Decode(data); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"initial", &cfg.Input.InitialInvestment},
		{"monthly", &cfg.Input.MonthlyContribution},
		{equityFlag, &cfg.Input.EquityPercentage},
	} {
		if !flags.Changed(f.name) {
			continue
		}
		v, _ := flags.GetFloat64(f.name)
		// decimal cannot represent NaN or Inf
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("--%s must be a finite number, got %g: %w", f.name, v, config.ErrOutOfRange)
		}
		*f.dst = decimal.NewFromFloat(v)
	}
	if flags.Changed("years") {
		cfg.Input.HorizonYears, _ = flags.GetInt("years")
	}
	if flags.Changed("simulations") {
		cfg.Simulation.NumSimulations, _ = flags.GetInt("simulations")
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("currency") {
		cfg.Simulation.Currency, _ = flags.GetString("currency")
	}
	config.ApplyDefaults(cfg)

	parser := config.NewInputParser()
	parser.Lenient, _ = flags.GetBool("lenient")
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// newEngine builds the engine for cfg, logging to stderr with --debug
func newEngine(cmd *cobra.Command, cfg *domain.Configuration) *calculation.Engine {
	engine := calculation.NewEngineWithConfig(config.EngineConfig(cfg.Simulation))
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}
