// Package maze carves corridor terrain onto an existing grid.Grid, for
// demos, stress layouts, and benchmarks.
//
// What:
//
//   - Carve blocks every plain cell, then opens a perfect maze with a
//     recursive backtracker over the interior odd/odd room lattice.
//   - Optional braiding knocks extra openings through dead ends, turning
//     the spanning tree into a graph with cycles.
//   - The start and end flags always come out reachable: a flag sitting
//     outside the carved lattice gets a short connecting channel.
//
// Why:
//
//   - Interesting search terrain: corridors defeat straight-line heuristic
//     guidance far better than random scatter does.
//   - Reproducible fixtures: a fixed seed carves the identical maze every
//     time, on any machine.
//
// Algorithm:
//
//   - Rooms live at odd (row, col) positions at least one cell away from
//     every border; walls occupy the even lattice lines between them.
//   - The backtracker walks the room lattice depth-first with a seeded
//     RNG, opening the wall cell between consecutive rooms, until every
//     room is part of one spanning tree.
//   - Braiding then revisits each dead-end room (exactly one open side)
//     and, with the configured probability, opens one wall toward an
//     adjacent room.
//
// Grids with fewer than three rows or three columns cannot host a wall
// between two rooms; Carve leaves them untouched.
//
// Options:
//
//   - WithBraiding: dead-end removal probability in [0,1]; 0 keeps the
//     perfect maze, 1 removes every dead end it legally can.
//   - WithSeed: RNG seed; 0 seeds from the clock.
//
// Errors:
//
//   - ErrNilGrid: a nil grid pointer was supplied.
//   - ErrBraidingRange: braiding factor outside [0,1].
//
// See: the astar package for searching the carved terrain.
package maze
