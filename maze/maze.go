// Package maze implements the carve itself: wall fill, recursive
// backtracking, braiding, and flag reconnection.
package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/pathgrid/grid"
)

// jumps are the four room-to-room moves on the odd lattice; the wall cell
// between two rooms sits at half the jump.
var jumps = [4][2]int{
	{0, -2}, {0, 2}, {-2, 0}, {2, 0},
}

// ortho are the four wall-probing moves around a room.
var ortho = [4][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
}

// Carve turns g into corridor terrain in place.
//
// Every plain cell is first blocked, then the backtracker opens a perfect
// maze over the interior odd/odd rooms, braiding (if configured) adds
// cycles, and finally both flags are connected to the carved lattice.
// Search bookkeeping on the cells is untouched; run grid.Reset or a
// search afterwards as usual.
//
// Grids with fewer than three rows or columns are left untouched.
// Complexity: O(rows×cols).
func Carve(g *grid.Grid, opts ...Option) error {
	// 1) Validate input and options.
	if g == nil {
		return ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}

	// 2) Too small to host a wall between two rooms: leave as is.
	if g.Rows < 3 || g.Cols < 3 {
		return nil
	}

	// 3) Seeded RNG; zero means clock.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 4) Fill: block every plain cell. Flag cells stay walkable.
	g.ForEach(func(c *grid.Cell) {
		if c.Role() == grid.RolePlain {
			_ = g.SetWalkable(c.Row, c.Col, false)
		}
	})

	// 5) Carve the spanning tree over the room lattice.
	carveRooms(g, rng)

	// 6) Braid: knock extra openings through dead ends.
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	// 7) Guarantee both flags can reach the lattice.
	connectFlag(g, g.Start())
	connectFlag(g, g.End())

	return nil
}

// open makes the cell at (row, col) walkable. Flag cells are already
// walkable and keep their role, so the flag-conflict refusal is ignored.
func open(g *grid.Grid, row, col int) {
	_ = g.SetWalkable(row, col, true)
}

// isRoom reports whether (row, col) is an interior odd/odd lattice
// position: at least one cell of wall border remains on every side.
func isRoom(g *grid.Grid, row, col int) bool {
	return row%2 == 1 && col%2 == 1 && row >= 1 && row <= g.Rows-2 && col >= 1 && col <= g.Cols-2
}

// carveRooms walks the room lattice depth-first from (1,1), opening each
// newly entered room and the wall cell crossed to reach it. Walkability
// cannot serve as the visited test because flag cells are always walkable,
// so visited rooms are tracked explicitly.
func carveRooms(g *grid.Grid, rng *rand.Rand) {
	start := grid.Coord{Row: 1, Col: 1}
	visited := map[grid.Coord]bool{start: true}
	open(g, start.Row, start.Col)

	stack := []grid.Coord{start}
	candidates := make([][2]int, 0, len(jumps))

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range jumps {
			nr, nc := curr.Row+d[0], curr.Col+d[1]
			if isRoom(g, nr, nc) && !visited[grid.Coord{Row: nr, Col: nc}] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		open(g, curr.Row+d[0]/2, curr.Col+d[1]/2) // the wall between the rooms
		next := grid.Coord{Row: curr.Row + d[0], Col: curr.Col + d[1]}
		open(g, next.Row, next.Col)
		visited[next] = true
		stack = append(stack, next)
	}
}

// braid revisits every room and, for each dead end (exactly one open
// orthogonal side), opens one randomly chosen wall toward an adjacent
// room with the given probability. Opening walls only ever adds exits, so
// braiding strictly reduces the dead-end count.
func braid(g *grid.Grid, probability float64, rng *rand.Rand) {
	walkable := func(row, col int) bool {
		c, err := g.At(row, col)
		return err == nil && c.Walkable()
	}

	candidates := make([]grid.Coord, 0, len(jumps))
	for row := 1; row <= g.Rows-2; row += 2 {
		for col := 1; col <= g.Cols-2; col += 2 {
			exits := 0
			for _, d := range ortho {
				if walkable(row+d[0], col+d[1]) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range jumps {
				nr, nc := row+d[0], col+d[1]
				wr, wc := row+d[0]/2, col+d[1]/2
				if isRoom(g, nr, nc) && walkable(nr, nc) && !walkable(wr, wc) {
					candidates = append(candidates, grid.Coord{Row: wr, Col: wc})
				}
			}
			if len(candidates) > 0 {
				w := candidates[rng.Intn(len(candidates))]
				open(g, w.Row, w.Col)
			}
		}
	}
}

// connectFlag carves a channel from the flag cell to the nearest lattice
// room unless the flag already touches walkable ground. The channel runs
// along the flag's row first, then along the target column, a few cells
// at most.
func connectFlag(g *grid.Grid, flag *grid.Cell) {
	if len(g.Neighbors(flag)) > 0 {
		return
	}

	targetRow := nearestRoomLine(flag.Row, g.Rows)
	targetCol := nearestRoomLine(flag.Col, g.Cols)

	lo, hi := minMax(flag.Col, targetCol)
	for col := lo; col <= hi; col++ {
		open(g, flag.Row, col)
	}
	lo, hi = minMax(flag.Row, targetRow)
	for row := lo; row <= hi; row++ {
		open(g, row, targetCol)
	}
}

// nearestRoomLine clamps a coordinate onto the closest interior odd
// lattice line.
func nearestRoomLine(v, size int) int {
	hi := size - 2
	if hi%2 == 0 {
		hi--
	}
	if v < 1 {
		v = 1
	}
	if v > hi {
		v = hi
	}
	if v%2 == 0 {
		v--
	}
	return v
}

// minMax orders two ints ascending.
func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
