package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/output"
	"github.com/rgehrsitz/mcfolio/internal/tui/components"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuimsg"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuistyles"
)

const (
	sliderInitial = iota
	sliderMonthly
	sliderEquity
	sliderHorizon
)

const sliderColumnWidth = 40

// ForecastModel is the main scene: four input sliders beside the band chart
// and summary of the last committed result.
type ForecastModel struct {
	sliders  []*components.ParameterSlider
	focused  int
	result   *domain.SimulationResult
	pending  bool
	currency string
	width    int
	height   int
}

// NewForecastModel builds the sliders from ranges, starting at in
func NewForecastModel(in domain.SimulationInput, ranges domain.InputRanges, currency string) *ForecastModel {
	amount := func(v float64) string { return output.FormatAmount(v, currency) }

	m := &ForecastModel{
		currency: currency,
		width:    80,
		height:   24,
		sliders: []*components.ParameterSlider{
			components.NewParameterSlider("Initial Investment", ranges.InitialInvestment, in.InitialInvestment).
				WithFormat(amount).
				WithDescription("lump sum invested at year 0"),
			components.NewParameterSlider("Monthly Contribution", ranges.MonthlyContribution, in.MonthlyContribution).
				WithFormat(amount).
				WithDescription("added each month, credited yearly"),
			components.NewParameterSlider("Equity Allocation", ranges.EquityPercentage, in.EquityPercentage).
				WithFormat(func(v float64) string {
					return strconv.FormatFloat(v, 'f', -1, 64) + "% (" + compare.MixName(v) + ")"
				}).
				WithDescription("rest is held in bonds"),
			components.NewParameterSlider("Horizon", ranges.HorizonYears, float64(in.HorizonYears)).
				WithFormat(func(v float64) string { return fmt.Sprintf("%.0f years", v) }).
				WithDescription("years to project"),
		},
	}
	m.sliders[0].SetFocused(true)
	return m
}

// Input returns the tuple the sliders currently describe
func (m *ForecastModel) Input() domain.SimulationInput {
	return domain.SimulationInput{
		InitialInvestment:   m.sliders[sliderInitial].Value,
		MonthlyContribution: m.sliders[sliderMonthly].Value,
		EquityPercentage:    m.sliders[sliderEquity].Value,
		HorizonYears:        int(m.sliders[sliderHorizon].Value),
	}
}

// Focused returns the index of the focused slider
func (m *ForecastModel) Focused() int { return m.focused }

// SetResult stores the committed result to display
func (m *ForecastModel) SetResult(r *domain.SimulationResult) { m.result = r }

// Result returns the displayed result
func (m *ForecastModel) Result() *domain.SimulationResult { return m.result }

// SetPending marks whether a commit is outstanding
func (m *ForecastModel) SetPending(p bool) { m.pending = p }

// SetSize updates the model dimensions
func (m *ForecastModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles slider navigation and adjustment
func (m *ForecastModel) Update(msg tea.Msg) (*ForecastModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k", "shift+tab"))):
		m.focus(m.focused - 1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.focus(m.focused + 1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "+"))):
		if m.sliders[m.focused].Increment() {
			return m, m.changed()
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h", "-"))):
		if m.sliders[m.focused].Decrement() {
			return m, m.changed()
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("r"))):
		return m, m.Reset(domain.DefaultInput())
	}
	return m, nil
}

// Reset moves every slider to in and reports the change
func (m *ForecastModel) Reset(in domain.SimulationInput) tea.Cmd {
	moved := false
	for i, v := range []float64{in.InitialInvestment, in.MonthlyContribution, in.EquityPercentage, float64(in.HorizonYears)} {
		if m.sliders[i].SetValue(v) {
			moved = true
		}
	}
	if !moved {
		return nil
	}
	return m.changed()
}

func (m *ForecastModel) focus(i int) {
	n := len(m.sliders)
	m.sliders[m.focused].SetFocused(false)
	m.focused = (i%n + n) % n
	m.sliders[m.focused].SetFocused(true)
}

func (m *ForecastModel) changed() tea.Cmd {
	in := m.Input()
	return func() tea.Msg {
		return tuimsg.InputChangedMsg{Input: in}
	}
}

// View renders sliders on the left and the projection on the right
func (m *ForecastModel) View() string {
	left := m.renderSliders()

	rightWidth := max(40, m.width-sliderColumnWidth-4)
	right := m.renderProjection(rightWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(sliderColumnWidth).Render(left),
		right,
	)
}

func (m *ForecastModel) renderSliders() string {
	parts := make([]string, 0, len(m.sliders))
	for _, s := range m.sliders {
		parts = append(parts, s.WithWidth(sliderColumnWidth-6).Render())
	}
	return strings.Join(parts, "\n\n")
}

func (m *ForecastModel) renderProjection(width int) string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render("Running first simulation..."))
	}

	in := m.result.Input
	title := fmt.Sprintf("%d-year projection • %s • %d paths",
		in.HorizonYears, compare.MixName(in.EquityPercentage), m.result.NumSimulations)

	status := tuistyles.SubtitleStyle.Render("up to date")
	if m.pending {
		status = lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render("updating...")
	}

	chartHeight := max(8, m.height-20)
	chart := components.NewBandChart(m.result.Chart).
		WithTitle(title).
		WithSize(width, chartHeight).
		Render()

	columns := 4
	if width < 100 {
		columns = 2
	}
	cards := components.SummaryCards(m.result.Summary, m.currency)

	return lipgloss.JoinVertical(lipgloss.Left,
		chart,
		status,
		"",
		components.MetricGrid(cards, columns),
	)
}
