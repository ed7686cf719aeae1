package recompute

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// ErrLoopStopped is returned when a call reaches a Loop that is no longer running
var ErrLoopStopped = errors.New("recompute loop stopped")

// Scheduler runs fn once after d. The returned stop func cancels the call if
// it has not started yet.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (stop func() bool)
}

// TimerScheduler schedules with time.AfterFunc
type TimerScheduler struct{}

// Schedule implements Scheduler
func (TimerScheduler) Schedule(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// Commit reports one Fire that reached the controller
type Commit struct {
	Generation uint64
	Outcome    Outcome
	Input      domain.SimulationInput
	Result     *domain.SimulationResult
	Err        error
}

// Loop drives a Controller from a single owner goroutine. Timer callbacks
// and caller requests are both funnelled through Run, so the controller is
// only ever touched by one goroutine.
type Loop struct {
	ctrl     *Controller
	sched    Scheduler
	onCommit func(Commit)

	ops  chan func()
	done chan struct{}

	mu   sync.Mutex
	stop func() bool
}

// NewLoop wraps ctrl. onCommit, when non-nil, is called on the loop goroutine
// after every Fire that was not stale. onCommit must not call back into the
// Loop (Do, Change, Prime, Result): the loop goroutine is busy running it, so
// such a call never returns.
func NewLoop(ctrl *Controller, sched Scheduler, onCommit func(Commit)) *Loop {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Loop{
		ctrl:     ctrl,
		sched:    sched,
		onCommit: onCommit,
		ops:      make(chan func()),
		done:     make(chan struct{}),
	}
}

// Run processes requests until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	defer l.cancelPending()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case op := <-l.ops:
			op()
		}
	}
}

// Change records a raw input and schedules its commit, cancelling any
// outstanding one.
func (l *Loop) Change(ctx context.Context, in domain.SimulationInput) error {
	return l.Do(ctx, func(c *Controller) {
		ticket := c.Change(in)
		l.schedule(ticket)
	})
}

// Prime commits the current raw input immediately
func (l *Loop) Prime(ctx context.Context) (Commit, error) {
	var commit Commit
	err := l.Do(ctx, func(c *Controller) {
		l.cancelPending()
		outcome, err := c.Prime()
		commit = l.report(outcome, err)
	})
	return commit, err
}

// Result returns the held result as seen from the loop goroutine
func (l *Loop) Result(ctx context.Context) (*domain.SimulationResult, error) {
	var result *domain.SimulationResult
	err := l.Do(ctx, func(c *Controller) { result = c.Result() })
	return result, err
}

// Do runs fn on the loop goroutine and waits for it to return
func (l *Loop) Do(ctx context.Context, fn func(*Controller)) error {
	finished := make(chan struct{})
	op := func() {
		defer close(finished)
		fn(l.ctrl)
	}

	select {
	case l.ops <- op:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrLoopStopped
	}
}

func (l *Loop) schedule(ticket Ticket) {
	l.cancelPending()

	stop := l.sched.Schedule(ticket.Delay, func() {
		// A send that loses the race with shutdown is dropped.
		select {
		case l.ops <- func() { l.fire(ticket.Generation) }:
		case <-l.done:
		}
	})

	l.mu.Lock()
	l.stop = stop
	l.mu.Unlock()
}

func (l *Loop) fire(generation uint64) {
	outcome, err := l.ctrl.Fire(generation)
	if outcome == Stale {
		return
	}
	l.report(outcome, err)
}

func (l *Loop) report(outcome Outcome, err error) Commit {
	commit := Commit{
		Generation: l.ctrl.generation,
		Outcome:    outcome,
		Input:      l.ctrl.Debounced(),
		Result:     l.ctrl.Result(),
		Err:        err,
	}
	if l.onCommit != nil {
		l.onCommit(commit)
	}
	return commit
}

func (l *Loop) cancelPending() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		l.stop()
		l.stop = nil
	}
}
