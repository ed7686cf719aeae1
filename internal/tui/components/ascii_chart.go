package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/output"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuistyles"
)

const yAxisWidth = 9

// BandChart plots the worst, middle and best bands of a projection as an
// ASCII chart. Values are taken as millions, as produced by Bands.Chart.
//
// A BandChart holds no terminal state; views build a fresh one per render.
type BandChart struct {
	Title      string
	Series     domain.ChartSeries
	Width      int
	Height     int
	ShowLegend bool
}

type cell struct {
	ch    rune
	color lipgloss.Color
}

// NewBandChart creates a chart over the given series
func NewBandChart(series domain.ChartSeries) *BandChart {
	return &BandChart{
		Series:     series,
		Width:      60,
		Height:     14,
		ShowLegend: true,
	}
}

// WithTitle sets the chart title
func (c *BandChart) WithTitle(title string) *BandChart {
	c.Title = title
	return c
}

// WithSize sets the total chart dimensions, axis included
func (c *BandChart) WithSize(width, height int) *BandChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *BandChart) Render() string {
	n := len(c.Series.Years)
	if n == 0 || len(c.Series.MiddleCase) != n || c.Height < 2 || c.plotWidth() < 2 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.TitleStyle.Render(c.Title))
		b.WriteString("\n\n")
	}

	lo, hi := c.bounds()
	grid := c.plot(lo, hi)

	axis := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	for row, cells := range grid {
		label := ""
		if row%3 == 0 || row == c.Height-1 {
			label = output.FormatMillions(hi - float64(row)/float64(c.Height-1)*(hi-lo))
		}
		b.WriteString(axis.Render(label))
		b.WriteString(" │")
		b.WriteString(renderCells(cells))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", yAxisWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", c.plotWidth()))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", yAxisWidth+2))
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(c.yearLabels()))

	if c.ShowLegend {
		b.WriteString("\n\n")
		b.WriteString(c.legend())
	}
	return b.String()
}

func (c *BandChart) plotWidth() int {
	return c.Width - yAxisWidth - 2
}

// bounds spans worst..best with 10% padding
func (c *BandChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range [][]float64{c.Series.WorstCase, c.Series.MiddleCase, c.Series.BestCase} {
		for _, v := range s {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 0.1)
	}
	return math.Max(0, lo-pad), hi + pad
}

// plot samples each column and shades the band between worst and best
func (c *BandChart) plot(lo, hi float64) [][]cell {
	width := c.plotWidth()
	grid := make([][]cell, c.Height)
	for i := range grid {
		grid[i] = make([]cell, width)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	row := func(v float64) int {
		r := c.Height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(c.Height-1)))
		return max(0, min(c.Height-1, r))
	}

	for x := 0; x < width; x++ {
		t := float64(x) / float64(width-1) * float64(len(c.Series.Years)-1)
		worst := row(sampleAt(c.Series.WorstCase, t))
		middle := row(sampleAt(c.Series.MiddleCase, t))
		best := row(sampleAt(c.Series.BestCase, t))

		for y := best; y <= worst; y++ {
			grid[y][x] = cell{ch: '░', color: tuistyles.ColorBandFill}
		}
		grid[worst][x] = cell{ch: '▼', color: tuistyles.ColorBandWorst}
		grid[best][x] = cell{ch: '▲', color: tuistyles.ColorBandBest}
		grid[middle][x] = cell{ch: '●', color: tuistyles.ColorBandMiddle}
	}
	return grid
}

// sampleAt linearly interpolates series at fractional index t
func sampleAt(series []float64, t float64) float64 {
	if len(series) == 0 {
		return 0
	}
	i := int(math.Floor(t))
	if i >= len(series)-1 {
		return series[len(series)-1]
	}
	frac := t - float64(i)
	return series[i] + (series[i+1]-series[i])*frac
}

// renderCells styles runs of same-coloured cells together
func renderCells(cells []cell) string {
	var b strings.Builder
	for start := 0; start < len(cells); {
		end := start
		var run strings.Builder
		for end < len(cells) && cells[end].color == cells[start].color {
			run.WriteRune(cells[end].ch)
			end++
		}
		if cells[start].color == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(cells[start].color).Render(run.String()))
		}
		start = end
	}
	return b.String()
}

// yearLabels spaces up to five year ticks along the x axis
func (c *BandChart) yearLabels() string {
	width := c.plotWidth()
	line := []rune(strings.Repeat(" ", width+4))
	years := c.Series.Years
	last := len(years) - 1

	ticks := 4
	if last < ticks {
		ticks = last
	}
	for k := 0; k <= ticks; k++ {
		idx := 0
		if ticks > 0 {
			idx = k * last / ticks
		}
		pos := 0
		if last > 0 {
			pos = idx * (width - 1) / last
		}
		label := []rune(strconv.Itoa(years[idx]))
		if pos+len(label) > len(line) {
			pos = len(line) - len(label)
		}
		copy(line[pos:], label)
	}
	return strings.TrimRight(string(line), " ") + "  years"
}

func (c *BandChart) legend() string {
	item := func(symbol string, color lipgloss.Color, name string) string {
		return lipgloss.NewStyle().Foreground(color).Render(symbol) + " " +
			lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(name)
	}
	return strings.Join([]string{
		item("▲", tuistyles.ColorBandBest, "best case (90th)"),
		item("●", tuistyles.ColorBandMiddle, "middle case (median)"),
		item("▼", tuistyles.ColorBandWorst, "worst case (10th)"),
	}, "  ")
}

// trimFloat renders v without trailing zeros
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
