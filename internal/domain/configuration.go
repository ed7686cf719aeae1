package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the on-disk shape of a forecast file
type Configuration struct {
	Input      InputSpec          `yaml:"input" json:"input"`
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
}

// InputSpec holds the four user inputs as written in the file
type InputSpec struct {
	InitialInvestment   decimal.Decimal `yaml:"initial_investment" json:"initialInvestment"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`
	EquityPercentage    decimal.Decimal `yaml:"equity_percentage" json:"equityPercentage"`
	HorizonYears        int             `yaml:"horizon_years" json:"horizonYears"`
}

// ToInput converts the file representation into the engine's value type
func (s InputSpec) ToInput() SimulationInput {
	return SimulationInput{
		InitialInvestment:   s.InitialInvestment.InexactFloat64(),
		MonthlyContribution: s.MonthlyContribution.InexactFloat64(),
		EquityPercentage:    s.EquityPercentage.InexactFloat64(),
		HorizonYears:        s.HorizonYears,
	}
}

// SimulationSettings tunes the engine and the report
type SimulationSettings struct {
	NumSimulations int           `yaml:"num_simulations" json:"numSimulations"`
	Seed           int64         `yaml:"seed" json:"seed"`
	Currency       string        `yaml:"currency" json:"currency"`
	AssetModel     *AssetAnchors `yaml:"asset_model,omitempty" json:"assetModel,omitempty"`
}

// AssetAnchors overrides the bond and equity anchors of the interpolation
type AssetAnchors struct {
	Bond   AnchorSpec `yaml:"bond" json:"bond"`
	Equity AnchorSpec `yaml:"equity" json:"equity"`
}

// AnchorSpec is one asset class's mean return and volatility
type AnchorSpec struct {
	Mean   decimal.Decimal `yaml:"mean" json:"mean"`
	StdDev decimal.Decimal `yaml:"std_dev" json:"stdDev"`
}

// Params converts the anchor to engine parameters
func (a AnchorSpec) Params() PortfolioParameters {
	return PortfolioParameters{Mean: a.Mean.InexactFloat64(), StdDev: a.StdDev.InexactFloat64()}
}
