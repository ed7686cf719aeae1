package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/output"
	"github.com/rgehrsitz/mcfolio/internal/recompute"
	"github.com/rgehrsitz/mcfolio/internal/tui/scenes"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuimsg"
)

// Options configures a new Model. Zero values fall back to defaults.
type Options struct {
	Input    domain.SimulationInput
	Ranges   domain.InputRanges
	Currency string
	// Delay overrides the debounce delay
	Delay time.Duration
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	engine        *calculation.Engine
	compareEngine *compare.CompareEngine
	controller    *recompute.Controller

	forecastModel *scenes.ForecastModel
	compareModel  *scenes.CompareModel

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	currency string
	status   string
	err      error

	// copyText writes to the system clipboard
	copyText func(string) error
}

// NewModel creates a new application model around engine
func NewModel(engine *calculation.Engine, opts Options) Model {
	if opts.Input == (domain.SimulationInput{}) {
		opts.Input = domain.DefaultInput()
	}
	if opts.Ranges == (domain.InputRanges{}) {
		opts.Ranges = domain.DefaultInputRanges()
	}
	if opts.Currency == "" {
		opts.Currency = output.DefaultCurrency
	}

	var ctrlOpts []recompute.Option
	if opts.Delay > 0 {
		ctrlOpts = append(ctrlOpts, recompute.WithDelay(opts.Delay))
	}

	forecast := scenes.NewForecastModel(opts.Input, opts.Ranges, opts.Currency)
	compute := func(in domain.SimulationInput) (*domain.SimulationResult, error) {
		return engine.Simulate(context.Background(), in)
	}

	compareModel := scenes.NewCompareModel(opts.Ranges.EquityPercentage, opts.Currency)
	compareModel.SetInput(forecast.Input())

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return Model{
		currentScene:  SceneForecast,
		width:         100,
		height:        32,
		engine:        engine,
		compareEngine: compare.NewCompareEngine(engine),
		controller:    recompute.NewController(compute, forecast.Input(), ctrlOpts...),
		forecastModel: forecast,
		compareModel:  compareModel,
		keys:          defaultKeyMap(),
		help:          help.New(),
		spinner:       sp,
		currency:      opts.Currency,
		copyText:      clipboard.WriteAll,
	}
}

// Init primes the first result and starts the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return primeMsg{} },
		m.spinner.Tick,
	)
}

// Result returns the result currently on screen
func (m Model) Result() *domain.SimulationResult {
	return m.controller.Result()
}

// Controller exposes the debounce controller for inspection
func (m Model) Controller() *recompute.Controller {
	return m.controller
}

// CurrentScene returns the active scene
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// commitCmd waits out the ticket's delay and then reports its generation
func commitCmd(ticket recompute.Ticket) tea.Cmd {
	return tea.Tick(ticket.Delay, func(time.Time) tea.Msg {
		return CommitMsg{Generation: ticket.Generation}
	})
}

// compareCmd runs a comparison off the update loop. The engine holds no
// per-run state, so this does not race with recomputes.
func (m Model) compareCmd(in domain.SimulationInput, equities []float64) tea.Cmd {
	ce := m.compareEngine
	return func() tea.Msg {
		set, err := ce.Compare(context.Background(), in, compare.CompareOptions{
			BaseEquity: in.EquityPercentage,
			Equities:   equities,
		})
		return tuimsg.CompareCompleteMsg{Set: set, Err: err}
	}
}

func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: write(text)}
	}
}

// summaryText renders the clipboard summary for a result
func summaryText(result *domain.SimulationResult, currency string) (string, error) {
	data, err := output.ConsoleFormatter{Currency: currency}.Format(result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
