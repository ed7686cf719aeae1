package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultCurrency is used when a file does not name one
const DefaultCurrency = "USD"

// ErrOutOfRange is wrapped by every input-boundary validation failure
var ErrOutOfRange = errors.New("value out of range")

// InputParser handles parsing of forecast files
type InputParser struct {
	Ranges domain.InputRanges
	// Lenient skips step checks and the slider bounds, keeping only the
	// hard engine limits (horizon >= 1, non-negative amounts, equity 0-100).
	Lenient bool
}

// NewInputParser creates a new input parser using the default slider ranges
func NewInputParser() *InputParser {
	return &InputParser{Ranges: domain.DefaultInputRanges()}
}

// LoadFromFile loads configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Decode parses configuration bytes and applies defaults without validating,
// so callers can layer overrides on top before calling ValidateConfiguration.
func Decode(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	ApplyDefaults(&config)
	return &config, nil
}

// DefaultConfiguration returns the configuration of a fresh session
func DefaultConfiguration() *domain.Configuration {
	in := domain.DefaultInput()
	config := &domain.Configuration{
		Input: domain.InputSpec{
			InitialInvestment:   decimal.NewFromFloat(in.InitialInvestment),
			MonthlyContribution: decimal.NewFromFloat(in.MonthlyContribution),
			EquityPercentage:    decimal.NewFromFloat(in.EquityPercentage),
			HorizonYears:        in.HorizonYears,
		},
	}
	ApplyDefaults(config)
	return config
}

// ApplyDefaults fills settings the file left empty
func ApplyDefaults(config *domain.Configuration) {
	if config.Simulation.NumSimulations == 0 {
		config.Simulation.NumSimulations = domain.DefaultNumSimulations
	}
	if config.Simulation.Currency == "" {
		config.Simulation.Currency = DefaultCurrency
	}
	config.Simulation.Currency = strings.ToUpper(config.Simulation.Currency)
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateInput(config.Input.ToInput()); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if err := ip.validateSimulationSettings(&config.Simulation); err != nil {
		return fmt.Errorf("simulation settings validation failed: %w", err)
	}
	return nil
}

// ValidateInput checks one input tuple against the parameter surface.
// horizon 0 and non-positive simulation counts are configuration errors
// rejected here, never inside the engine.
func (ip *InputParser) ValidateInput(in domain.SimulationInput) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"initial_investment", in.InitialInvestment},
		{"monthly_contribution", in.MonthlyContribution},
		{"equity_percentage", in.EquityPercentage},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be a finite number, got %g: %w", f.name, f.v, ErrOutOfRange)
		}
	}
	if in.HorizonYears < 1 {
		return fmt.Errorf("horizon_years must be at least 1, got %d: %w", in.HorizonYears, ErrOutOfRange)
	}
	if in.InitialInvestment < 0 {
		return fmt.Errorf("initial_investment cannot be negative: %w", ErrOutOfRange)
	}
	if in.MonthlyContribution < 0 {
		return fmt.Errorf("monthly_contribution cannot be negative: %w", ErrOutOfRange)
	}
	if in.EquityPercentage < 0 || in.EquityPercentage > 100 {
		return fmt.Errorf("equity_percentage must be between 0 and 100, got %g: %w", in.EquityPercentage, ErrOutOfRange)
	}

	if ip.Lenient {
		return nil
	}

	checks := []struct {
		r domain.Range
		v float64
	}{
		{ip.Ranges.InitialInvestment, in.InitialInvestment},
		{ip.Ranges.MonthlyContribution, in.MonthlyContribution},
		{ip.Ranges.EquityPercentage, in.EquityPercentage},
		{ip.Ranges.HorizonYears, float64(in.HorizonYears)},
	}
	for _, c := range checks {
		if !c.r.Contains(c.v) {
			return fmt.Errorf("%s must be between %g and %g, got %g: %w", c.r.Name, c.r.Min, c.r.Max, c.v, ErrOutOfRange)
		}
		if !c.r.OnStep(c.v) {
			return fmt.Errorf("%s must move in steps of %g from %g, got %g: %w", c.r.Name, c.r.Step, c.r.Min, c.v, ErrOutOfRange)
		}
	}

	return nil
}

// validateSimulationSettings validates engine and report settings
func (ip *InputParser) validateSimulationSettings(settings *domain.SimulationSettings) error {
	if settings.NumSimulations < 1 {
		return fmt.Errorf("num_simulations must be positive, got %d", settings.NumSimulations)
	}
	if settings.NumSimulations > MaxSimulations {
		return fmt.Errorf("num_simulations cannot exceed %d, got %d", MaxSimulations, settings.NumSimulations)
	}
	if len(settings.Currency) != 3 {
		return fmt.Errorf("currency must be a three-letter ISO code, got %q", settings.Currency)
	}

	if settings.AssetModel != nil {
		for _, a := range []struct {
			name   string
			anchor domain.AnchorSpec
		}{
			{"bond", settings.AssetModel.Bond},
			{"equity", settings.AssetModel.Equity},
		} {
			if a.anchor.StdDev.LessThan(decimal.Zero) {
				return fmt.Errorf("%s std_dev cannot be negative", a.name)
			}
			if a.anchor.Mean.LessThanOrEqual(decimal.NewFromInt(-1)) {
				return fmt.Errorf("%s mean must be greater than -100%%", a.name)
			}
		}
	}

	return nil
}

// MaxSimulations bounds the per-run path count so one run stays interactive
const MaxSimulations = 1_000_000
