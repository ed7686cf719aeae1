package config

import (
	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// EngineConfig translates file settings into calculation settings
func EngineConfig(settings domain.SimulationSettings) calculation.EngineConfig {
	cfg := calculation.DefaultEngineConfig()
	if settings.NumSimulations > 0 {
		cfg.NumSimulations = settings.NumSimulations
	}
	cfg.Seed = settings.Seed
	if settings.AssetModel != nil {
		cfg.Model = calculation.AssetModel{
			Bond:   settings.AssetModel.Bond.Params(),
			Equity: settings.AssetModel.Equity.Params(),
		}
	}
	return cfg
}
