package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

func TestParameterSlider_StepsWithinRange(t *testing.T) {
	r := domain.DefaultInputRanges().HorizonYears
	s := NewParameterSlider("Horizon", r, 20)

	assert.True(t, s.Increment())
	assert.Equal(t, 25.0, s.Value)
	assert.True(t, s.Increment())
	assert.False(t, s.Increment(), "Max is sticky")
	assert.Equal(t, 30.0, s.Value)

	s.SetValue(0)
	assert.Equal(t, 5.0, s.Value, "Values below the range clamp to Min")
	assert.False(t, s.Decrement())
}

func TestParameterSlider_SnapsOnConstruction(t *testing.T) {
	r := domain.DefaultInputRanges().InitialInvestment
	s := NewParameterSlider("Initial", r, 1_020_000)

	assert.Equal(t, 1_000_000.0, s.Value)
	assert.InDelta(t, 500_000.0/9_500_000.0, s.Fraction(), 1e-12)
}

func TestParameterSlider_Render(t *testing.T) {
	r := domain.DefaultInputRanges().EquityPercentage
	s := NewParameterSlider("Equity", r, 60).
		WithFormat(func(v float64) string { return trimFloat(v) + "%" }).
		WithDescription("share held in equities").
		SetFocused(true)

	out := s.Render()
	assert.Contains(t, out, "Equity")
	assert.Contains(t, out, "60%")
	assert.Contains(t, out, "0% ─ 100%")
	assert.Contains(t, out, "share held in equities")
	assert.Contains(t, s.RenderCompact(), "Equity:")

	s.SetFocused(false)
	assert.NotContains(t, s.Render(), "share held in equities", "Description only shows while focused")
}

func testSeries() domain.ChartSeries {
	return domain.Bands{
		Worst:  []float64{1_000_000, 1_010_000, 1_030_000, 1_050_000},
		Middle: []float64{1_000_000, 1_060_000, 1_120_000, 1_190_000},
		Best:   []float64{1_000_000, 1_120_000, 1_250_000, 1_400_000},
	}.Chart()
}

func TestBandChart_Render(t *testing.T) {
	out := NewBandChart(testSeries()).WithTitle("Projection").WithSize(50, 10).Render()

	assert.Contains(t, out, "Projection")
	assert.Contains(t, out, "middle case (median)")
	assert.Contains(t, out, "years")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "M")

	plotRows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "│") {
			plotRows++
		}
	}
	assert.Equal(t, 10, plotRows)
}

func TestBandChart_Empty(t *testing.T) {
	assert.Contains(t, NewBandChart(domain.ChartSeries{}).Render(), "No data to display")
}

func TestBandChart_BandOrdering(t *testing.T) {
	c := NewBandChart(testSeries()).WithSize(40, 12)
	lo, hi := c.bounds()
	require.Less(t, lo, 1.0)
	require.Greater(t, hi, 1.4)

	grid := c.plot(lo, hi)
	last := c.plotWidth() - 1
	rowOf := func(ch rune) int {
		for y := range grid {
			if grid[y][last].ch == ch {
				return y
			}
		}
		return -1
	}
	best, middle, worst := rowOf('▲'), rowOf('●'), rowOf('▼')
	require.NotEqual(t, -1, middle)
	assert.Less(t, best, middle, "Best sits above the median")
	assert.Less(t, middle, worst, "Worst sits below the median")
}

func TestSampleAt(t *testing.T) {
	s := []float64{1, 3, 7}
	assert.Equal(t, 1.0, sampleAt(s, 0))
	assert.Equal(t, 2.0, sampleAt(s, 0.5))
	assert.Equal(t, 7.0, sampleAt(s, 2))
	assert.Equal(t, 7.0, sampleAt(s, 5))
	assert.Equal(t, 0.0, sampleAt(nil, 1))
}

func TestSummaryCards(t *testing.T) {
	cards := SummaryCards(domain.Summary{
		TotalInvestment: 3_400_000,
		FinalValue:      6_100_000,
		TotalReturn:     2_700_000,
		ExpectedYield:   5,
	}, "USD")

	require.Len(t, cards, 4)
	assert.Equal(t, "$3,400,000.00", cards[0].Value)
	assert.Equal(t, TonePositive, cards[2].Tone)
	assert.Equal(t, "5.00%", cards[3].Value)

	grid := MetricGrid(cards, 2)
	assert.Contains(t, grid, "Final Value")
	assert.Contains(t, grid, "Expected Yield")
	assert.Empty(t, MetricGrid(nil, 2))

	loss := SummaryCards(domain.Summary{TotalReturn: -1}, "USD")
	assert.Equal(t, ToneNegative, loss[2].Tone)
}

func TestMixCard_Render(t *testing.T) {
	r := compare.ComparisonResult{
		MixName:            "100/0",
		ExpectedReturn:     decimal.NewFromInt(7),
		Volatility:         decimal.NewFromInt(18),
		FinalWorst:         decimal.NewFromInt(1_300_000),
		FinalMedian:        decimal.NewFromInt(3_500_000),
		FinalBest:          decimal.NewFromInt(7_900_000),
		MedianDiffFromBase: decimal.NewFromInt(-250_000),
	}

	out := NewMixCard(r, "USD").WithWidth(40).Render()
	assert.Contains(t, out, "100/0 equity/bonds")
	assert.Contains(t, out, "$3,500,000.00")
	assert.Contains(t, out, "▼ $250,000.00")

	base := NewMixCard(r, "USD").AsBase(true).WithWidth(40).Render()
	assert.Contains(t, base, "(base)")
	assert.NotContains(t, base, "vs base")
}
