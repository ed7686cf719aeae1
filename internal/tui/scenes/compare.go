package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/tui/components"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuimsg"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuistyles"
)

// CompareModel lets the user pick alternative equity mixes and shows how
// they fare against the current allocation.
type CompareModel struct {
	options     []float64
	selected    map[int]bool
	cursorIndex int
	input       domain.SimulationInput
	results     *compare.ComparisonSet
	comparing   bool
	err         error
	currency    string
	width       int
	height      int
}

// NewCompareModel offers every step of the equity range, with the
// all-bond, balanced and all-equity mixes preselected
func NewCompareModel(r domain.Range, currency string) *CompareModel {
	m := &CompareModel{
		selected: make(map[int]bool),
		currency: currency,
	}
	for v := r.Min; v <= r.Max+1e-9; v += r.Step * 2 {
		m.options = append(m.options, v)
	}
	for i, v := range m.options {
		if v == r.Min || v == r.Max || v == 50 {
			m.selected[i] = true
		}
	}
	return m
}

// SetInput sets the tuple the comparison holds fixed apart from equity
func (m *CompareModel) SetInput(in domain.SimulationInput) {
	m.input = in
}

// SetResults stores a finished comparison
func (m *CompareModel) SetResults(set *compare.ComparisonSet, err error) {
	m.results = set
	m.err = err
	m.comparing = false
}

// Results returns the last comparison, if any
func (m *CompareModel) Results() *compare.ComparisonSet { return m.results }

// Comparing reports whether a comparison is running
func (m *CompareModel) Comparing() bool { return m.comparing }

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.comparing {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursorIndex > 0 {
			m.cursorIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursorIndex < len(m.options)-1 {
			m.cursorIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "x"))):
		m.selected[m.cursorIndex] = !m.selected[m.cursorIndex]
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		equities := m.SelectedEquities()
		if len(equities) == 0 {
			return m, nil
		}
		m.comparing = true
		m.err = nil
		in := m.input
		return m, func() tea.Msg {
			return tuimsg.CompareRequestedMsg{Input: in, Equities: equities}
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("backspace", "delete"))):
		m.results = nil
		m.err = nil
	}
	return m, nil
}

// SelectedEquities returns the chosen mixes in ascending order
func (m *CompareModel) SelectedEquities() []float64 {
	var out []float64
	for i, v := range m.options {
		if m.selected[i] {
			out = append(out, v)
		}
	}
	return out
}

// View renders the selection list and, once available, the results
func (m *CompareModel) View() string {
	selection := m.renderSelection()

	var right string
	switch {
	case m.comparing:
		right = tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render(
			fmt.Sprintf("Simulating %d mixes against %s...", len(m.SelectedEquities()), compare.MixName(m.input.EquityPercentage))))
	case m.err != nil:
		right = tuistyles.BorderStyle.Render(tuistyles.ErrorStyle.Render("Comparison failed: " + m.err.Error()))
	case m.results != nil:
		right = m.renderResults()
	default:
		right = tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render("Press Enter to compare the selected mixes"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, selection, "  ", right)
}

func (m *CompareModel) renderSelection() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render("Alternative Mixes"))
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("base: " + compare.MixName(m.input.EquityPercentage)))
	content.WriteString("\n\n")

	subtle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for i, v := range m.options {
		cursor := "  "
		if i == m.cursorIndex {
			cursor = tuistyles.SelectedItemStyle.Render("❯ ")
		}
		box := subtle.Render("[ ] ")
		if m.selected[i] {
			box = tuistyles.SelectedItemStyle.Render("[✓] ")
		}
		name := compare.MixName(v)
		if i == m.cursorIndex {
			name = tuistyles.SelectedItemStyle.Render(name)
		}
		content.WriteString(cursor + box + name + "\n")
	}

	content.WriteString("\n")
	content.WriteString(subtle.Render("space select • enter run\nbackspace clear"))
	return tuistyles.BorderStyle.Render(content.String())
}

func (m *CompareModel) renderResults() string {
	set := m.results

	var cards []string
	if set.BaseResult != nil {
		cards = append(cards, components.NewMixCard(*set.BaseResult, m.currency).AsBase(true).Render())
	}
	for _, alt := range set.AlternativeResults {
		cards = append(cards, components.NewMixCard(alt, m.currency).Render())
	}

	perRow := max(1, (m.width-30)/36)
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}

	var recs strings.Builder
	if len(set.Recommendations) > 0 {
		recs.WriteString(tuistyles.TitleStyle.Render("Recommendations"))
		for _, r := range set.Recommendations {
			recs.WriteString("\n• " + r)
		}
	}

	header := tuistyles.SubtitleStyle.Render(fmt.Sprintf("seed %d • all mixes share the same draws", set.Seed))
	parts := append([]string{header}, rows...)
	if recs.Len() > 0 {
		parts = append(parts, "", recs.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
