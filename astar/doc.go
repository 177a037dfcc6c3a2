// Package astar implements the A* best-first search over a grid.Grid,
// tuned for interactive, observable runs.
//
// What:
//
//   - Finder binds to one Grid and executes searches from its start flag to
//     its end flag, serializing runs through an active-run guard.
//   - The frontier is an indexed min-heap keyed on f-score with FIFO
//     tie-breaking: among equal f-scores the earliest-queued cell pops
//     first, which makes exploration order fully deterministic together
//     with the grid's fixed neighbor probe order.
//   - Every Visited, Frontier, and Path event is stamped on the affected
//     cell as a grid.Mark and forwarded to the OnStep hook the moment it
//     happens, so a renderer can draw the search mid-flight.
//   - A context cancels cooperatively: the loop checks once per expansion
//     and returns the partial Result with the context's error.
//
// Why:
//
//   - Visual exploration: the hook is the yield point where a UI redraws,
//     pumps input, or slows the run down.
//   - Headless pathfinding: drop the hook and FindPath is a plain solver.
//
// Cost models:
//
//   - UniformSteps charges 1 per move regardless of direction and pairs
//     with the unscaled diagonal-distance estimate. Diagonal and
//     orthogonal moves cost the same, so the search minimizes move count
//     and pulls hard toward diagonals; the estimate can exceed the true
//     remaining move count, trading strict optimality for that pull.
//     This is the default.
//   - WeightedSteps charges Cell.StepCost (orthogonal 10, diagonal 14)
//     with the estimate scaled to match. The heuristic is admissible and
//     consistent under this model, so found paths are cost-optimal.
//
// Outcomes:
//
//   - Found: the end flag was reached; Result carries the start→end path.
//   - Exhausted: the frontier drained with the end unreached. This is a
//     normal Result (Found=false) with a nil error, not a failure.
//
// Complexity:
//
//   - Time: O(N log N) for N cells, every cell expanded at most once and
//     each frontier operation costing O(log N).
//   - Space: O(N) for the frontier, closed set, and per-cell bookkeeping.
//
// Options:
//
//   - WithContext: cooperative cancellation and deadlines.
//   - WithOnStep: per-observation hook.
//   - WithCostModel: UniformSteps or WeightedSteps accounting.
//   - WithHeuristic: custom remaining-cost estimator.
//
// Errors:
//
//   - ErrNilGrid: a nil grid pointer was supplied.
//   - ErrSearchRunning: FindPath called while a run is already active.
//   - ErrOptionViolation: an invalid Option value was supplied.
//
// See: the grid package for the field the search runs over.
package astar
