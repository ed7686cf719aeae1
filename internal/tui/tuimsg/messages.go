// Package tuimsg holds the messages scenes send to the root model. It sits
// below both so neither has to import the other.
package tuimsg

import (
	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// InputChangedMsg carries the raw tuple after a slider moved
type InputChangedMsg struct {
	Input domain.SimulationInput
}

// CompareRequestedMsg asks the root model to run an allocation comparison
type CompareRequestedMsg struct {
	Input    domain.SimulationInput
	Equities []float64
}

// CompareCompleteMsg carries a finished comparison
type CompareCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}
