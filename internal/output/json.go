package output

import (
	"encoding/json"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"gopkg.in/yaml.v3"
)

// Report is the serialisable view of a result shared by the JSON and YAML formatters
type Report struct {
	Input          domain.SimulationInput     `json:"input" yaml:"input"`
	Params         domain.PortfolioParameters `json:"params" yaml:"params"`
	Chart          domain.ChartSeries         `json:"chart" yaml:"chart"`
	Summary        domain.Summary             `json:"summary" yaml:"summary"`
	NumSimulations int                        `json:"numSimulations" yaml:"num_simulations"`
	Seed           int64                      `json:"seed" yaml:"seed"`
	Assumptions    []string                   `json:"assumptions" yaml:"assumptions"`
}

// NewReport builds the serialisable view of a result
func NewReport(result *domain.SimulationResult) Report {
	return Report{
		Input:          result.Input,
		Params:         result.Params,
		Chart:          result.Chart,
		Summary:        result.Summary,
		NumSimulations: result.NumSimulations,
		Seed:           result.Seed,
		Assumptions:    ResultAssumptions(result),
	}
}

// JSONFormatter renders the report as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	report := NewReport(result)
	if j.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// YAMLFormatter renders the report as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	return yaml.Marshal(NewReport(result))
}
