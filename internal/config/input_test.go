package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
	assert.False(t, parser.Lenient, "Should be strict by default")
	assert.Equal(t, domain.DefaultInputRanges(), parser.Ranges)
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	require.NoError(t, err)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_Fixture(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile(filepath.Join("testdata", "forecast.yaml"))
	require.NoError(t, err)

	assert.True(t, config.Input.InitialInvestment.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, config.Input.MonthlyContribution.Equal(decimal.NewFromInt(10_000)))
	assert.True(t, config.Input.EquityPercentage.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 20, config.Input.HorizonYears)

	assert.Equal(t, 10_000, config.Simulation.NumSimulations)
	assert.Equal(t, int64(42), config.Simulation.Seed)
	assert.Equal(t, "USD", config.Simulation.Currency, "Currency should be upper-cased")
	require.NotNil(t, config.Simulation.AssetModel)
	assert.True(t, config.Simulation.AssetModel.Equity.StdDev.Equal(decimal.NewFromFloat(0.18)))

	assert.Equal(t, domain.DefaultInput(), config.Input.ToInput())
}

func TestInputParser_Parse_AppliesDefaults(t *testing.T) {
	yamlContent := `
input:
  initial_investment: 500000
  monthly_contribution: 0
  equity_percentage: 0
  horizon_years: 5
`
	config, err := NewInputParser().Parse([]byte(yamlContent))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultNumSimulations, config.Simulation.NumSimulations)
	assert.Equal(t, DefaultCurrency, config.Simulation.Currency)
	assert.Equal(t, int64(0), config.Simulation.Seed)
	assert.Nil(t, config.Simulation.AssetModel)
}

func TestInputParser_Parse_QuotedDecimals(t *testing.T) {
	yamlContent := `
input:
  initial_investment: "750000.00"
  monthly_contribution: "2500"
  equity_percentage: "35"
  horizon_years: 10
`
	parser := NewInputParser()
	parser.Lenient = true

	config, err := parser.Parse([]byte(yamlContent))
	require.NoError(t, err)
	assert.Equal(t, 750_000.0, config.Input.ToInput().InitialInvestment)
	assert.Equal(t, 35.0, config.Input.ToInput().EquityPercentage)
}

func TestInputParser_ValidateInput(t *testing.T) {
	valid := domain.DefaultInput()

	tests := []struct {
		name    string
		mutate  func(in *domain.SimulationInput)
		wantErr string
	}{
		{"defaults are valid", func(in *domain.SimulationInput) {}, ""},
		{"range minimum", func(in *domain.SimulationInput) {
			*in = domain.SimulationInput{InitialInvestment: 500_000, EquityPercentage: 0, HorizonYears: 5}
		}, ""},
		{"range maximum", func(in *domain.SimulationInput) {
			*in = domain.SimulationInput{InitialInvestment: 10_000_000, MonthlyContribution: 50_000, EquityPercentage: 100, HorizonYears: 30}
		}, ""},
		{"zero horizon", func(in *domain.SimulationInput) { in.HorizonYears = 0 }, "horizon_years must be at least 1"},
		{"negative initial", func(in *domain.SimulationInput) { in.InitialInvestment = -1 }, "initial_investment cannot be negative"},
		{"negative monthly", func(in *domain.SimulationInput) { in.MonthlyContribution = -1 }, "monthly_contribution cannot be negative"},
		{"equity above 100", func(in *domain.SimulationInput) { in.EquityPercentage = 101 }, "equity_percentage must be between 0 and 100"},
		{"initial below slider", func(in *domain.SimulationInput) { in.InitialInvestment = 450_000 }, "initial_investment must be between"},
		{"initial off step", func(in *domain.SimulationInput) { in.InitialInvestment = 1_010_000 }, "initial_investment must move in steps of"},
		{"equity off step", func(in *domain.SimulationInput) { in.EquityPercentage = 62 }, "equity_percentage must move in steps of"},
		{"horizon above slider", func(in *domain.SimulationInput) { in.HorizonYears = 35 }, "horizon_years must be between"},
		{"horizon off step", func(in *domain.SimulationInput) { in.HorizonYears = 12 }, "horizon_years must move in steps of"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := parser.ValidateInput(in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestInputParser_ValidateInput_Lenient(t *testing.T) {
	parser := NewInputParser()
	parser.Lenient = true

	offGrid := domain.SimulationInput{InitialInvestment: 1234, MonthlyContribution: 17, EquityPercentage: 62.5, HorizonYears: 1}
	assert.NoError(t, parser.ValidateInput(offGrid), "Lenient mode accepts values off the slider grid")

	offGrid.HorizonYears = 0
	assert.ErrorIs(t, parser.ValidateInput(offGrid), ErrOutOfRange, "Horizon must still be at least one year")
}

func TestInputParser_ValidateInput_NonFinite(t *testing.T) {
	for _, lenient := range []bool{false, true} {
		parser := NewInputParser()
		parser.Lenient = lenient

		for name, in := range map[string]domain.SimulationInput{
			"nan initial":  {InitialInvestment: math.NaN(), MonthlyContribution: 0, EquityPercentage: 60, HorizonYears: 5},
			"nan equity":   {InitialInvestment: 1_000_000, EquityPercentage: math.NaN(), HorizonYears: 5},
			"inf monthly":  {InitialInvestment: 1_000_000, MonthlyContribution: math.Inf(1), EquityPercentage: 60, HorizonYears: 5},
			"-inf initial": {InitialInvestment: math.Inf(-1), EquityPercentage: 60, HorizonYears: 5},
		} {
			err := parser.ValidateInput(in)
			assert.ErrorIs(t, err, ErrOutOfRange, "%s (lenient=%v)", name, lenient)
			assert.ErrorContains(t, err, "must be a finite number", "%s (lenient=%v)", name, lenient)
		}
	}
}

func TestInputParser_ValidateConfiguration_AnchorOrder(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Simulation.AssetModel = &domain.AssetAnchors{
		Bond:   domain.AnchorSpec{Mean: decimal.NewFromInt(-2), StdDev: decimal.NewFromFloat(0.04)},
		Equity: domain.AnchorSpec{Mean: decimal.NewFromFloat(0.07), StdDev: decimal.NewFromFloat(-0.18)},
	}

	parser := NewInputParser()
	for i := 0; i < 20; i++ {
		assert.ErrorContains(t, parser.ValidateConfiguration(cfg), "bond mean must be greater than -100%", "The bond anchor is always checked first")
	}
}

func TestInputParser_ValidateConfiguration_Settings(t *testing.T) {
	base := func() *domain.Configuration {
		return &domain.Configuration{
			Input: domain.InputSpec{
				InitialInvestment:   decimal.NewFromInt(1_000_000),
				MonthlyContribution: decimal.NewFromInt(10_000),
				EquityPercentage:    decimal.NewFromInt(60),
				HorizonYears:        20,
			},
			Simulation: domain.SimulationSettings{NumSimulations: 10_000, Currency: "USD"},
		}
	}

	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(base()))

	cfg := base()
	cfg.Simulation.NumSimulations = -5
	assert.ErrorContains(t, parser.ValidateConfiguration(cfg), "num_simulations must be positive")

	cfg = base()
	cfg.Simulation.NumSimulations = MaxSimulations + 1
	assert.ErrorContains(t, parser.ValidateConfiguration(cfg), "num_simulations cannot exceed")

	cfg = base()
	cfg.Simulation.Currency = "DOLLARS"
	assert.ErrorContains(t, parser.ValidateConfiguration(cfg), "three-letter ISO code")

	cfg = base()
	cfg.Simulation.AssetModel = &domain.AssetAnchors{
		Bond:   domain.AnchorSpec{Mean: decimal.NewFromFloat(0.02), StdDev: decimal.NewFromFloat(-0.01)},
		Equity: domain.AnchorSpec{Mean: decimal.NewFromFloat(0.07), StdDev: decimal.NewFromFloat(0.18)},
	}
	assert.ErrorContains(t, parser.ValidateConfiguration(cfg), "bond std_dev cannot be negative")

	cfg = base()
	cfg.Input.HorizonYears = 0
	err := parser.ValidateConfiguration(cfg)
	assert.ErrorContains(t, err, "input validation failed")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestEngineConfig(t *testing.T) {
	cfg := EngineConfig(domain.SimulationSettings{})
	assert.Equal(t, calculation.DefaultEngineConfig(), cfg, "Empty settings keep engine defaults")

	cfg = EngineConfig(domain.SimulationSettings{
		NumSimulations: 250,
		Seed:           7,
		AssetModel: &domain.AssetAnchors{
			Bond:   domain.AnchorSpec{Mean: decimal.NewFromFloat(0.03), StdDev: decimal.NewFromFloat(0.05)},
			Equity: domain.AnchorSpec{Mean: decimal.NewFromFloat(0.08), StdDev: decimal.NewFromFloat(0.2)},
		},
	})
	assert.Equal(t, 250, cfg.NumSimulations)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, domain.PortfolioParameters{Mean: 0.03, StdDev: 0.05}, cfg.Model.Bond)
	assert.Equal(t, domain.PortfolioParameters{Mean: 0.08, StdDev: 0.2}, cfg.Model.Equity)
}

func TestDecode_DefersValidation(t *testing.T) {
	config, err := Decode([]byte("input:\n  horizon_years: 0\n"))
	require.NoError(t, err, "Decode does not validate")
	assert.Equal(t, DefaultCurrency, config.Simulation.Currency)

	err = NewInputParser().ValidateConfiguration(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDefaultConfiguration(t *testing.T) {
	config := DefaultConfiguration()

	assert.Equal(t, domain.DefaultInput(), config.Input.ToInput())
	assert.Equal(t, domain.DefaultNumSimulations, config.Simulation.NumSimulations)
	assert.NoError(t, NewInputParser().ValidateConfiguration(config))
}
