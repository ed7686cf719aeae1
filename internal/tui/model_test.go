package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/recompute"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuimsg"
)

func testModel(t *testing.T) Model {
	t.Helper()
	engine := calculation.NewEngineWithConfig(calculation.EngineConfig{NumSimulations: 200, Seed: 7})
	m := NewModel(engine, Options{Delay: time.Millisecond})

	primed, cmd := m.Update(primeMsg{})
	assert.Nil(t, cmd)
	return primed.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds the resulting message back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

func TestModel_InitPrimesFirstResult(t *testing.T) {
	m := testModel(t)

	require.NotNil(t, m.Result())
	assert.Equal(t, 1, m.Controller().Runs())
	assert.Equal(t, 20, m.Result().Input.HorizonYears)
	assert.Equal(t, 60.0, m.Result().Input.EquityPercentage)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "20-year projection")
}

func TestModel_SliderChangeCommitsAfterDelay(t *testing.T) {
	m := testModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, tick := run(t, m, cmd)
	assert.Equal(t, recompute.Pending, m.Controller().State())
	assert.Equal(t, 1, m.Controller().Runs(), "Nothing is recomputed before the delay elapses")

	m, _ = run(t, m, tick)

	assert.Equal(t, recompute.Committed, m.Controller().State())
	assert.Equal(t, 2, m.Controller().Runs())
	assert.Equal(t, 1_050_000.0, m.Result().Input.InitialInvestment)
	assert.Equal(t, 1_050_000.0, m.forecastModel.Result().Input.InitialInvestment)
}

func TestModel_RapidChangesCommitOnce(t *testing.T) {
	m := testModel(t)

	var ticks []tea.Cmd
	for i := 0; i < 3; i++ {
		var cmd, tick tea.Cmd
		m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m, tick = run(t, m, cmd)
		ticks = append(ticks, tick)
	}

	for _, tick := range ticks[:2] {
		msg := tick()
		m, _ = send(t, m, msg)
		assert.Equal(t, recompute.Pending, m.Controller().State(), "Superseded tickets are ignored")
	}
	m, _ = run(t, m, ticks[2])

	assert.Equal(t, 2, m.Controller().Runs())
	assert.Equal(t, 1_150_000.0, m.Result().Input.InitialInvestment)
}

func TestModel_RevertedChangeReusesResult(t *testing.T) {
	m := testModel(t)
	first := m.Result()

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = run(t, m, cmd)
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, tick := run(t, m, cmd)
	m, _ = run(t, m, tick)

	assert.Equal(t, 1, m.Controller().Runs())
	assert.Same(t, first, m.Result())
}

func TestModel_FocusMovesBetweenSliders(t *testing.T) {
	m := testModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.forecastModel.Focused())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	msg := cmd()
	changed, ok := msg.(tuimsg.InputChangedMsg)
	require.True(t, ok)
	assert.Equal(t, 65.0, changed.Input.EquityPercentage)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 3, m.forecastModel.Focused(), "Focus wraps around")
}

func TestModel_CopySummary(t *testing.T) {
	m := testModel(t)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := send(t, m, runes("y"))
	m, _ = run(t, m, cmd)

	assert.Contains(t, copied, "PORTFOLIO FORECAST SUMMARY")
	assert.Contains(t, copied, "Total Investment: $3,400,000.00")
	assert.Equal(t, "summary copied to clipboard", m.status)
}

func TestModel_Navigation(t *testing.T) {
	m := testModel(t)
	press := func(msg tea.KeyMsg) {
		var cmd tea.Cmd
		m, cmd = send(t, m, msg)
		m, _ = run(t, m, cmd)
	}

	press(runes("c"))
	assert.Equal(t, SceneCompare, m.CurrentScene())
	assert.Contains(t, m.View(), "Alternative Mixes")

	press(runes("?"))
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "Reading the chart")

	press(runes("?"))
	assert.Equal(t, SceneCompare, m.CurrentScene(), "Help toggles back to the previous scene")

	press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SceneForecast, m.CurrentScene())
}

func TestModel_CompareScene(t *testing.T) {
	m := testModel(t)
	m, _ = send(t, m, NavigateMsg{Scene: SceneCompare})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.compareModel.Comparing())
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	set := m.compareModel.Results()
	require.NotNil(t, set)
	assert.Equal(t, "60/40", set.BaseMixName)
	assert.Len(t, set.AlternativeResults, 3)
	assert.False(t, m.compareModel.Comparing())
	assert.Contains(t, m.View(), "(base)")
}

func TestModel_ErrorIsDismissedByAnyKey(t *testing.T) {
	m := testModel(t)
	m, _ = send(t, m, ErrorMsg{Err: assert.AnError})
	assert.Contains(t, m.View(), "Press any key")

	m, _ = send(t, m, runes("x"))
	assert.NotContains(t, m.View(), "Press any key")
}

func TestModel_Quit(t *testing.T) {
	m := testModel(t)
	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
