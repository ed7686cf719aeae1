package recompute

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCompute counts invocations and remembers the inputs it saw
type recordingCompute struct {
	inputs []domain.SimulationInput
	err    error
}

func (r *recordingCompute) compute(in domain.SimulationInput) (*domain.SimulationResult, error) {
	r.inputs = append(r.inputs, in)
	if r.err != nil {
		return nil, r.err
	}
	return &domain.SimulationResult{Input: in}, nil
}

func input(initial float64, equity float64) domain.SimulationInput {
	return domain.SimulationInput{
		InitialInvestment:   initial,
		MonthlyContribution: 0,
		EquityPercentage:    equity,
		HorizonYears:        5,
	}
}

func TestController_InitialState(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))

	assert.Equal(t, Committed, c.State())
	assert.Nil(t, c.Result())
	assert.Equal(t, DebounceDelay, c.Delay())
	assert.Equal(t, 300*time.Millisecond, c.Delay())
	assert.Empty(t, rc.inputs)
}

func TestController_ChangeEntersPending(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))

	ticket := c.Change(input(550_000, 0))

	assert.Equal(t, Pending, c.State())
	assert.Equal(t, DebounceDelay, ticket.Delay)
	assert.Equal(t, input(550_000, 0), c.Raw())
	assert.Equal(t, input(500_000, 0), c.Debounced(), "raw changes are not committed until the ticket fires")
	assert.Empty(t, rc.inputs)
}

func TestController_CoalescesBurst(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))

	var tickets []Ticket
	for i := 1; i <= 5; i++ {
		tickets = append(tickets, c.Change(input(500_000, float64(i*5))))
	}

	// Every scheduled tick eventually arrives; only the last is live.
	var outcomes []Outcome
	for _, tk := range tickets {
		outcome, err := c.Fire(tk.Generation)
		require.NoError(t, err)
		outcomes = append(outcomes, outcome)
	}

	assert.Equal(t, []Outcome{Stale, Stale, Stale, Stale, Recomputed}, outcomes)
	require.Len(t, rc.inputs, 1, "exactly one recompute per burst")
	assert.Equal(t, input(500_000, 25), rc.inputs[0], "the last value of the burst is committed")
	assert.Equal(t, Committed, c.State())
	assert.Equal(t, 1, c.Runs())
}

func TestController_MemoisesIdenticalTuple(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))

	tk := c.Change(input(600_000, 10))
	outcome, err := c.Fire(tk.Generation)
	require.NoError(t, err)
	assert.Equal(t, Recomputed, outcome)
	held := c.Result()

	// Move away and back within one window: the committed tuple is unchanged.
	c.Change(input(650_000, 10))
	tk = c.Change(input(600_000, 10))
	outcome, err = c.Fire(tk.Generation)
	require.NoError(t, err)

	assert.Equal(t, Unchanged, outcome)
	assert.Len(t, rc.inputs, 1)
	assert.Same(t, held, c.Result(), "held result is kept, not recomputed")
}

func TestController_SupersedesResult(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))

	_, err := c.Prime()
	require.NoError(t, err)
	first := c.Result()

	tk := c.Change(input(700_000, 50))
	outcome, err := c.Fire(tk.Generation)
	require.NoError(t, err)

	assert.Equal(t, Recomputed, outcome)
	assert.NotSame(t, first, c.Result())
	assert.Equal(t, input(500_000, 0), first.Input, "earlier result is not mutated")
	assert.Equal(t, input(700_000, 50), c.Result().Input)
	assert.Equal(t, 2, c.Runs())
}

func TestController_FireWithoutPendingIsStale(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))

	tk := c.Change(input(550_000, 0))
	_, err := c.Fire(tk.Generation)
	require.NoError(t, err)

	outcome, err := c.Fire(tk.Generation)
	require.NoError(t, err)
	assert.Equal(t, Stale, outcome, "a ticket fires at most once")
	assert.Len(t, rc.inputs, 1)
}

func TestController_PrimeInvalidatesTickets(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))

	tk := c.Change(input(800_000, 20))
	_, err := c.Prime()
	require.NoError(t, err)

	outcome, err := c.Fire(tk.Generation)
	require.NoError(t, err)
	assert.Equal(t, Stale, outcome)
	assert.Equal(t, []domain.SimulationInput{input(800_000, 20)}, rc.inputs)
}

func TestController_ComputeFailureKeepsResult(t *testing.T) {
	rc := &recordingCompute{}
	c := NewController(rc.compute, input(500_000, 0))
	_, err := c.Prime()
	require.NoError(t, err)
	held := c.Result()

	rc.err = errors.New("boom")
	tk := c.Change(input(900_000, 0))
	outcome, err := c.Fire(tk.Generation)

	assert.Equal(t, Failed, outcome)
	assert.ErrorContains(t, err, "recompute failed: boom")
	assert.Same(t, held, c.Result())
	assert.Error(t, c.Err())

	// The same tuple is retried on the next commit because it never produced a result.
	rc.err = nil
	tk = c.Change(input(900_000, 0))
	outcome, err = c.Fire(tk.Generation)
	require.NoError(t, err)
	assert.Equal(t, Recomputed, outcome)
	assert.NoError(t, c.Err())
}

func TestController_WithDelay(t *testing.T) {
	c := NewController((&recordingCompute{}).compute, input(500_000, 0), WithDelay(50*time.Millisecond))

	tk := c.Change(input(550_000, 0))
	assert.Equal(t, 50*time.Millisecond, tk.Delay)
}

func TestController_EndToEndWithMeanSampler(t *testing.T) {
	engine := calculation.NewEngineWithConfig(calculation.EngineConfig{NumSimulations: 100, Seed: 1})
	engine.NewSampler = func(int64) calculation.NormalSampler { return calculation.MeanSampler{} }
	compute := func(in domain.SimulationInput) (*domain.SimulationResult, error) {
		return engine.Simulate(context.Background(), in)
	}

	c := NewController(compute, domain.DefaultInput())
	var last Ticket
	for _, initial := range []float64{600_000, 550_000, 500_000} {
		last = c.Change(input(initial, 0))
	}
	outcome, err := c.Fire(last.Generation)
	require.NoError(t, err)
	require.Equal(t, Recomputed, outcome)

	summary := c.Result().Summary
	assert.InDelta(t, 500_000*math.Pow(1.02, 5), summary.FinalValue, 1e-6)
	assert.Equal(t, 500_000.0, summary.TotalInvestment)
	assert.Equal(t, summary.FinalValue-500_000, summary.TotalReturn)
	assert.Equal(t, 1, c.Runs())
}

func TestStateAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "committed", Committed.String())
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "stale", Stale.String())
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "recomputed", Recomputed.String())
	assert.Equal(t, "failed", Failed.String())
}
