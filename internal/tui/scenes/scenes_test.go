package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuimsg"
)

func TestForecastModel_InputFromSliders(t *testing.T) {
	m := NewForecastModel(domain.DefaultInput(), domain.DefaultInputRanges(), "USD")

	assert.Equal(t, domain.DefaultInput(), m.Input())
	assert.Equal(t, 0, m.Focused())
	assert.Contains(t, m.View(), "Running first simulation")
}

func TestForecastModel_EdgeOfRangeEmitsNothing(t *testing.T) {
	in := domain.DefaultInput()
	in.HorizonYears = 30
	m := NewForecastModel(in, domain.DefaultInputRanges(), "USD")
	for i := 0; i < sliderHorizon; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd, "No change is reported when the slider is already at Max")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, 25, cmd().(tuimsg.InputChangedMsg).Input.HorizonYears)
}

func TestForecastModel_Reset(t *testing.T) {
	in := domain.SimulationInput{InitialInvestment: 2_000_000, MonthlyContribution: 0, EquityPercentage: 100, HorizonYears: 5}
	m := NewForecastModel(in, domain.DefaultInputRanges(), "USD")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.DefaultInput(), cmd().(tuimsg.InputChangedMsg).Input)

	assert.Nil(t, m.Reset(domain.DefaultInput()), "Resetting to the current tuple is a no-op")
}

func TestCompareModel_Selection(t *testing.T) {
	m := NewCompareModel(domain.DefaultInputRanges().EquityPercentage, "USD")
	m.SetInput(domain.DefaultInput())

	assert.Equal(t, []float64{0, 50, 100}, m.SelectedEquities())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, []float64{0, 10, 50, 100}, m.SelectedEquities())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	req := cmd().(tuimsg.CompareRequestedMsg)
	assert.Equal(t, domain.DefaultInput(), req.Input)
	assert.Equal(t, []float64{0, 10, 50, 100}, req.Equities)
	assert.True(t, m.Comparing())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "Keys are ignored while a comparison runs")

	m.SetResults(nil, assert.AnError)
	assert.False(t, m.Comparing())
	assert.Contains(t, m.View(), "Comparison failed")
}
