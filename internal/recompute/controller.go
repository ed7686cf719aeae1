// Package recompute gates re-simulation behind a debounce window and
// memoises the held result by input tuple.
//
// The Controller is a small state machine owned by a single goroutine (the
// TUI update loop, for instance). It never starts timers itself: Change hands
// back a Ticket that the owner schedules, and the owner calls Fire when the
// ticket's delay elapses. A newer Change invalidates every older ticket, which
// is how an outstanding commit is cancelled.
package recompute

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// DebounceDelay is the quiet period before a raw input change is committed
const DebounceDelay = 300 * time.Millisecond

// State is the controller's position in the debounce cycle
type State int

const (
	// Committed means the held result reflects the last settled input
	Committed State = iota
	// Pending means a raw input changed and its commit has not fired yet
	Pending
)

func (s State) String() string {
	switch s {
	case Committed:
		return "committed"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}

// Outcome describes what a Fire call did
type Outcome int

const (
	// Stale means the ticket was superseded by a later change
	Stale Outcome = iota
	// Unchanged means the committed tuple matched the held result's tuple
	Unchanged
	// Recomputed means a new result replaced the held one
	Recomputed
	// Failed means the compute function returned an error; the old result is kept
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Stale:
		return "stale"
	case Unchanged:
		return "unchanged"
	case Recomputed:
		return "recomputed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ComputeFunc runs the simulation pipeline for one committed tuple
type ComputeFunc func(domain.SimulationInput) (*domain.SimulationResult, error)

// Ticket is a scheduled commit. Only the ticket from the latest Change is live.
type Ticket struct {
	Generation uint64
	Delay      time.Duration
}

// Option configures a Controller
type Option func(*Controller)

// WithDelay overrides the debounce delay
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// Controller owns the raw input, the debounced input and the held result.
// It is not safe for concurrent use.
type Controller struct {
	compute ComputeFunc
	delay   time.Duration

	state      State
	generation uint64
	raw        domain.SimulationInput
	debounced  domain.SimulationInput

	result      *domain.SimulationResult
	resultInput domain.SimulationInput
	lastErr     error
	runs        int
}

// NewController creates a controller starting from the given raw input.
// No result is held until the first commit (or Prime).
func NewController(compute ComputeFunc, initial domain.SimulationInput, opts ...Option) *Controller {
	c := &Controller{
		compute:   compute,
		delay:     DebounceDelay,
		state:     Committed,
		raw:       initial,
		debounced: initial,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Change records a raw input change, cancels any outstanding commit and
// returns the ticket for the new one.
func (c *Controller) Change(in domain.SimulationInput) Ticket {
	c.raw = in
	c.generation++
	c.state = Pending
	return Ticket{Generation: c.generation, Delay: c.delay}
}

// Fire commits the latest raw input if the ticket is still live.
// It recomputes synchronously only when the committed tuple differs from the
// one behind the held result.
func (c *Controller) Fire(generation uint64) (Outcome, error) {
	if c.state != Pending || generation != c.generation {
		return Stale, nil
	}
	c.debounced = c.raw
	c.state = Committed
	return c.commit()
}

// Prime commits the current raw input immediately, bypassing the delay.
// Used to produce the first result of a session.
func (c *Controller) Prime() (Outcome, error) {
	c.generation++
	c.debounced = c.raw
	c.state = Committed
	return c.commit()
}

func (c *Controller) commit() (Outcome, error) {
	if c.result != nil && c.debounced == c.resultInput {
		return Unchanged, nil
	}

	result, err := c.compute(c.debounced)
	if err != nil {
		c.lastErr = fmt.Errorf("recompute failed: %w", err)
		return Failed, c.lastErr
	}

	c.result = result
	c.resultInput = c.debounced
	c.lastErr = nil
	c.runs++
	return Recomputed, nil
}

// State returns the current debounce state
func (c *Controller) State() State { return c.state }

// Raw returns the most recent raw input
func (c *Controller) Raw() domain.SimulationInput { return c.raw }

// Debounced returns the last committed input
func (c *Controller) Debounced() domain.SimulationInput { return c.debounced }

// Result returns the held result, or nil before the first successful commit
func (c *Controller) Result() *domain.SimulationResult { return c.result }

// Err returns the error from the most recent failed recompute, if any
func (c *Controller) Err() error { return c.lastErr }

// Runs returns how many times the compute function produced a result
func (c *Controller) Runs() int { return c.runs }

// Delay returns the debounce delay
func (c *Controller) Delay() time.Duration { return c.delay }
