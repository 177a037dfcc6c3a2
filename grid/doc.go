// Package grid models the playing field of the pathfinding engine: a
// fixed-size 2D field of cells with walkability, start/end flags, and
// per-search bookkeeping.
//
// What:
//
//   - Cell carries an immutable (Row, Col) identity, a walkability bit, a
//     flag Role, and the scores, predecessor link, and Mark a search run
//     writes while it progresses.
//   - Grid owns the cells in stable storage, validates coordinates,
//     maintains the one-start/one-end invariant, and answers 8-directional
//     walkable-neighbor queries in a fixed deterministic order.
//   - Editing operations (SetWalkable, MoveStart, MoveEnd, Reset) are the
//     surface an interactive session drives; ForEach is the enumeration
//     surface a renderer draws from.
//
// Why:
//
//   - Interactive pathfinding: paint obstacles, drag flags, re-run the
//     search, watch it explore.
//   - Headless use: the same operations script layouts for tests and
//     benchmarks with no UI attached.
//
// Invariants:
//
//   - Exactly one cell holds RoleStart and exactly one holds RoleEnd,
//     never the same cell.
//   - A flag cell is walkable for as long as it holds its role; the
//     walkability it had before is remembered and restored the moment the
//     flag moves away.
//   - Blocked cells never appear in Neighbors results.
//
// Complexity:
//
//   - New, Reset, ForEach: O(rows×cols).
//   - At, InBounds, SetWalkable, MoveStart, MoveEnd: O(1).
//   - Neighbors: O(1) (eight probes).
//
// Errors:
//
//   - ErrBadDimensions: non-positive dimensions, or fewer than two cells.
//   - ErrOutOfBounds: coordinate outside [0,rows)×[0,cols).
//   - ErrFlagConflict: blocking a flag cell, or moving one flag onto the
//     cell holding the other.
//
// See: the astar package for the search engine that runs over a Grid.
package grid
