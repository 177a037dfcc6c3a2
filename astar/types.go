// Package astar provides tunable options, run states, and error
// definitions for A* search over a grid.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrSearchRunning is returned when FindPath is invoked while a prior
	// run on the same Finder is still active. Runs are serialized; retry
	// after the active run returns.
	ErrSearchRunning = errors.New("astar: search already running")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// State identifies where a Finder is in its run lifecycle:
//
//	Idle → Running → Found | Exhausted
//
// A cancelled or failed run returns the Finder to Idle. Found and
// Exhausted persist until the next FindPath call.
type State int32

const (
	// StateIdle: no run has started, or the last run was cancelled.
	StateIdle State = iota
	// StateRunning: an expansion loop is active right now.
	StateRunning
	// StateFound: the last run reached the end cell.
	StateFound
	// StateExhausted: the last run drained the frontier without reaching
	// the end cell.
	StateExhausted
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateFound:
		return "Found"
	case StateExhausted:
		return "Exhausted"
	default:
		return "Idle"
	}
}

// CostModel selects how a single move between adjacent cells is charged.
type CostModel int

const (
	// UniformSteps charges 1 per move regardless of direction, paired by
	// default with the unscaled DiagonalDistance estimate. Paths minimize
	// move count, not geometric length. The default.
	UniformSteps CostModel = iota

	// WeightedSteps charges Cell.StepCost per move (orthogonal 10,
	// diagonal 14), paired by default with DiagonalDistance scaled to the
	// same units. Found paths are cost-optimal under this model.
	WeightedSteps
)

// StepFunc receives every search observation: the affected cell and the
// mark stamped on it (grid.MarkVisited, grid.MarkFrontier, or
// grid.MarkPath; never grid.MarkNone). It runs synchronously on the
// searching goroutine once per event, which makes it the cooperative
// yield point for interactive hosts: render, pump input, or sleep here.
// The hook must not edit the grid; the active run owns it.
type StepFunc func(c *grid.Cell, kind grid.Mark)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. an unknown cost model), it is recorded
// internally and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnStep is called on every Visited, Frontier, and Path observation.
	OnStep StepFunc

	// Model selects the step cost accounting.
	Model CostModel

	// Heuristic estimates the remaining cost to the end cell. Nil selects
	// the model's paired default. An estimator that overestimates under
	// the active model forfeits optimality of the found path.
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op OnStep hook
//   - UniformSteps accounting with its paired heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(*grid.Cell, grid.Mark) {},
		Model:  UniformSteps,
		err:    nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the per-observation hook.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithCostModel selects the step cost accounting.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if m != UniformSteps && m != WeightedSteps {
			o.err = fmt.Errorf("%w: unknown cost model %d", ErrOptionViolation, m)
			return
		}
		o.Model = m
	}
}

// WithHeuristic overrides the model's paired remaining-cost estimator.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result holds the outcome of one search run.
//
// Found=false with a nil error is the Exhausted outcome: the whole
// reachable region was explored and no path exists. It is a normal
// result, not a failure.
type Result struct {
	// Path holds the start→end coordinates of the found path, nil when no
	// path exists. Consecutive entries are always 8-adjacent.
	Path []grid.Coord

	// Cost is the end cell's final g-score in the run's cost model units:
	// move count under UniformSteps, 10/14-weighted length under
	// WeightedSteps. Zero when no path exists.
	Cost float64

	// Expanded counts cells popped from the frontier during the run.
	Expanded int

	// Found reports whether the end cell was reached.
	Found bool
}
