// Package pathgrid is an interactive grid pathfinding engine: paint
// obstacles on a 2D field, drag the start and end flags around, and watch
// an informed best-first search reveal the lowest-cost route step by step.
//
// 🚀 What is pathgrid?
//
//	A small, focused toolkit that brings together:
//		• grid:  the playing field — cells, walkability, start/end flags,
//		  deterministic 8-directional neighbor queries
//		• astar: the search engine — indexed frontier, diagonal-distance
//		  heuristic, per-step observation hooks, cooperative cancellation
//		• maze:  recursive-backtracker terrain carving for demos and tests
//		• cmd/pathview: a terminal visualizer wired to the same hooks
//
// ✨ Why choose pathgrid?
//
//   - Deterministic – fixed neighbor order and FIFO tie-breaking make every
//     run reproducible, cell for cell
//   - Observable – every Visited, Frontier, and Path event reaches your
//     hook the instant it happens; drive a UI, collect stats, or just watch
//   - Honest outcomes – "no path exists" is a result, not an error
//   - Pure Go core – grid, astar and maze depend on nothing outside the
//     standard library; only the visualizer brings a terminal stack
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/  — Cell & Grid primitives, editing operations, invariants
//	astar/ — the A* engine, heuristics, cost models, run state machine
//	maze/  — maze carving with optional braiding (dead-end removal)
//
// Quick ASCII example:
//
//	S · · █ ·        S = start, E = end, █ = blocked
//	· ◆ · █ ·        ◆ = the route the engine reveals, sliding
//	· · ◆ █ ·            around the wall through the one
//	· · · ◆ E            diagonal gap
//
// Dive into the subpackage documentation for full examples; cmd/pathview
// is the quickest way to get a feel for the search.
//
//	go get github.com/katalvlaran/pathgrid
package pathgrid
