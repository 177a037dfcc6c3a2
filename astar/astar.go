// Package astar drives the search loop: frontier management, relaxation,
// path reconstruction, and the run state machine live here.
package astar

import (
	"sync/atomic"

	"github.com/katalvlaran/pathgrid/grid"
)

// Finder runs A* searches over a single Grid. At most one search is
// active at a time: an atomic run guard serializes attempts, and a
// concurrent or re-entrant FindPath returns ErrSearchRunning instead of
// corrupting the shared per-cell bookkeeping.
//
// The zero Finder is not usable; construct one with NewFinder.
type Finder struct {
	g       *grid.Grid
	running atomic.Bool
	state   atomic.Int32
}

// NewFinder binds a Finder to g in the StateIdle state.
// Returns ErrNilGrid when g is nil.
func NewFinder(g *grid.Grid) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Finder{g: g}, nil
}

// State reports where the Finder is in its run lifecycle. Safe to call
// from any goroutine, including from inside an OnStep hook.
func (f *Finder) State() State {
	return State(f.state.Load())
}

// FindPath executes one A* run from the grid's start flag to its end flag.
//
// The run begins by wiping per-cell search bookkeeping (scores,
// predecessors, marks) while keeping the painted blocks, then expands
// cells in ascending f-score order, FIFO among ties, probing neighbors in
// the grid's fixed order. Every observation reaches the OnStep hook as it
// happens.
//
// Outcomes:
//
//   - Path found: Result.Found=true with the start→end Path, nil error;
//     the Finder lands in StateFound.
//   - No path: Result.Found=false, nil error; the Finder lands in
//     StateExhausted.
//   - Cancelled: the partial Result (Expanded so far) with the context's
//     error; the Finder returns to StateIdle. Marks stamped before the
//     cancellation stay on the grid.
//   - ErrSearchRunning: another run is active; grid and state untouched.
//   - ErrOptionViolation: an invalid option; grid and state untouched.
//
// The caller must not edit the grid, from a hook or another goroutine,
// while FindPath is running.
func (f *Finder) FindPath(opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Claim the single run slot; refuse overlapping runs.
	if !f.running.CompareAndSwap(false, true) {
		return Result{}, ErrSearchRunning
	}
	defer f.running.Store(false)
	f.state.Store(int32(StateRunning))

	// 3) Prepare the runner for this execution.
	n := f.g.Rows * f.g.Cols
	r := &runner{
		g:       f.g,
		options: cfg,
		step:    stepCostFor(cfg.Model),
		h:       heuristicFor(cfg),
		open:    newFrontier(n),
		closed:  make(map[*grid.Cell]struct{}, n),
	}

	// 4) Run and translate the outcome into the terminal state.
	res, err := r.search()
	switch {
	case err != nil:
		f.state.Store(int32(StateIdle))
	case res.Found:
		f.state.Store(int32(StateFound))
	default:
		f.state.Store(int32(StateExhausted))
	}
	return res, err
}

// FindPath is the package-level convenience: a one-off run over g with a
// throwaway Finder. See Finder.FindPath for semantics.
func FindPath(g *grid.Grid, opts ...Option) (Result, error) {
	f, err := NewFinder(g)
	if err != nil {
		return Result{}, err
	}
	return f.FindPath(opts...)
}

// stepCostFor returns the per-move charge function for the model.
func stepCostFor(m CostModel) func(from, to *grid.Cell) float64 {
	if m == WeightedSteps {
		return func(from, to *grid.Cell) float64 { return from.StepCost(to) }
	}
	return func(_, _ *grid.Cell) float64 { return 1 }
}

// heuristicFor returns the explicit estimator or the model's paired
// default.
func heuristicFor(cfg Options) Heuristic {
	if cfg.Heuristic != nil {
		return cfg.Heuristic
	}
	if cfg.Model == WeightedSteps {
		return weightedDiagonalDistance
	}
	return DiagonalDistance
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *grid.Grid
	options  Options
	step     func(from, to *grid.Cell) float64
	h        Heuristic
	open     *frontier
	closed   map[*grid.Cell]struct{}
	expanded int
}

// search seeds the frontier and drives the expansion loop to a terminal
// outcome or cancellation.
func (r *runner) search() (Result, error) {
	start, end := r.g.Start(), r.g.End()

	// 1) Fresh bookkeeping; painted blocks persist across runs.
	r.g.Reset(false)

	// 2) Seed the frontier with the start cell. Seeding is not a
	//    discovery, so no Frontier observation is emitted for it.
	start.SetScores(0, r.h(start, end))
	r.open.push(start)

	for !r.open.empty() {
		// 3) Cooperative cancellation, checked once per expansion.
		select {
		case <-r.options.Ctx.Done():
			return Result{Expanded: r.expanded}, r.options.Ctx.Err()
		default:
		}

		// 4) Expand the best frontier cell: lowest f-score, FIFO on ties.
		current := r.open.pop()
		r.closed[current] = struct{}{}
		r.expanded++
		r.observe(current, grid.MarkVisited)

		// 5) Goal test on expansion, after the Visited observation.
		if current == end {
			return Result{
				Path:     r.reconstruct(end),
				Cost:     end.GScore(),
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		// 6) Relax every walkable neighbor in probe order.
		r.relaxNeighbors(current, end)
	}

	// 7) Frontier drained without reaching the end: no path exists.
	return Result{Expanded: r.expanded}, nil
}

// relaxNeighbors offers current as predecessor to each walkable neighbor.
// A neighbor not yet queued, or one reached more cheaply through current,
// adopts current and refreshed scores; new cells join the frontier with a
// Frontier observation, already-queued cells are re-ordered in place and
// emit nothing.
func (r *runner) relaxNeighbors(current, end *grid.Cell) {
	for _, neighbor := range r.g.Neighbors(current) {
		// Expanded cells are never re-opened: each cell is visited at
		// most once per run.
		if _, done := r.closed[neighbor]; done {
			continue
		}

		tentative := current.GScore() + r.step(current, neighbor)
		inOpen := r.open.contains(neighbor)
		if inOpen && tentative >= neighbor.GScore() {
			continue
		}

		neighbor.SetPredecessor(current)
		neighbor.SetScores(tentative, tentative+r.h(neighbor, end))

		if inOpen {
			r.open.fix(neighbor)
			continue
		}
		r.open.push(neighbor)
		r.observe(neighbor, grid.MarkFrontier)
	}
}

// reconstruct walks predecessor links from the end cell back to the start
// cell (whose predecessor is nil), emitting Path observations in that
// walk order, and returns the path flipped to start→end.
func (r *runner) reconstruct(end *grid.Cell) []grid.Coord {
	var path []grid.Coord
	for c := end; c != nil; c = c.Predecessor() {
		r.observe(c, grid.MarkPath)
		path = append(path, c.Coord())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// observe stamps the mark on the cell and forwards the event to the hook.
func (r *runner) observe(c *grid.Cell, kind grid.Mark) {
	c.SetMark(kind)
	r.options.OnStep(c, kind)
}
