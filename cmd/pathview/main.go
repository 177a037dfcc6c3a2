// Command pathview is an interactive terminal front-end for the pathgrid
// engine: paint blocks with the mouse, drag the S and E flags around, carve
// a maze, then watch A* sweep the field cell by cell.
//
// Keys:
//
//	enter   run the search (esc cancels a run in progress)
//	m       carve a fresh maze over the grid
//	c       clear blocks and search leftovers
//	e       toggle erase mode; in erase mode dragging clears blocks
//	q       quit (also esc or ctrl-c while idle)
//
// Flags:
//
//	-rows, -cols   grid dimensions
//	-step          pause after each search observation
//	-braid         maze braiding ratio in [0,1]
//	-seed          maze seed, 0 derives one from the clock
//	-weighted      charge 10/14 movement costs instead of 1 per step
//	-silent        disable completion tones
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
)

const (
	cellWidth     = 2 // terminal columns per grid cell
	frameInterval = 33 * time.Millisecond
	toneDuration  = 120 * time.Millisecond
	foundToneHz   = 880
	missedToneHz  = 220

	audioRate = beep.SampleRate(44100)
)

// Cell palette: red sweep, purple frontier, aqua path, green/yellow flags.
var (
	rgbStart    = tcell.NewRGBColor(106, 255, 20)  // Bright green
	rgbEnd      = tcell.NewRGBColor(247, 241, 47)  // Bright yellow
	rgbVisited  = tcell.NewRGBColor(255, 0, 0)     // Red
	rgbFrontier = tcell.NewRGBColor(216, 0, 245)   // Purple
	rgbPath     = tcell.NewRGBColor(47, 234, 247)  // Aqua
	rgbBlock    = tcell.NewRGBColor(200, 200, 200) // Light gray
	rgbPlain    = tcell.NewRGBColor(90, 90, 90)    // Dim gray
	rgbStatus   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// config carries the parsed command-line flags.
type config struct {
	rows, cols int
	stepDelay  time.Duration
	braiding   float64
	seed       int64
	weighted   bool
	silent     bool
}

// viewer owns the terminal session: one grid, one finder, and the gesture
// state that turns mouse events into grid edits.
type viewer struct {
	screen tcell.Screen
	g      *grid.Grid
	finder *astar.Finder

	stepDelay time.Duration
	model     astar.CostModel
	braiding  float64
	seed      int64

	// Mouse gesture state
	draggingStart bool
	draggingEnd   bool
	painting      bool
	erasing       bool
	eraseArmed    bool
	prevButtons   tcell.ButtonMask

	// Run session state
	events    chan tcell.Event
	cancel    context.CancelFunc
	searching bool
	quitting  bool
	last      astar.Result
	lastErr   error
	hasRun    bool

	// Audio
	audioInit bool
}

func newViewer(cfg config) (*viewer, error) {
	g, err := grid.New(cfg.rows, cfg.cols)
	if err != nil {
		return nil, err
	}
	finder, err := astar.NewFinder(g)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	v := &viewer{
		screen:    screen,
		g:         g,
		finder:    finder,
		stepDelay: cfg.stepDelay,
		model:     astar.UniformSteps,
		braiding:  cfg.braiding,
		seed:      cfg.seed,
		events:    make(chan tcell.Event, 100),
	}
	if cfg.weighted {
		v.model = astar.WeightedSteps
	}

	if !cfg.silent {
		if err := v.initAudio(); err != nil {
			// Non-fatal, the visualizer runs fine without sound.
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	return v, nil
}

func (v *viewer) initAudio() error {
	err := speaker.Init(audioRate, audioRate.N(time.Second/10))
	if err == nil {
		v.audioInit = true
	}
	return err
}

// playTone beeps at freq for the tone duration: high for a found path, low
// for an exhausted frontier.
func (v *viewer) playTone(freq float64) {
	if !v.audioInit {
		return
	}
	sine, err := generators.SineTone(audioRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioRate.N(toneDuration), sine))
}

// gridOrigin returns the screen position of cell (0,0), centering the grid
// above the one-row status line.
func gridOrigin(width, height int, g *grid.Grid) (int, int) {
	offX := (width - g.Cols*cellWidth) / 2
	offY := (height - 1 - g.Rows) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}
	return offX, offY
}

// cellAt maps a screen position to grid coordinates. ok is false for
// positions outside the drawn grid.
func (v *viewer) cellAt(x, y int) (row, col int, ok bool) {
	width, height := v.screen.Size()
	offX, offY := gridOrigin(width, height, v.g)
	if x < offX || y < offY {
		return 0, 0, false
	}
	row = y - offY
	col = (x - offX) / cellWidth
	if !v.g.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// cellGlyph picks the two runes and style for a cell. Flags render over
// marks, blocks over stale marks left by an earlier run.
func cellGlyph(c *grid.Cell) (rune, rune, tcell.Style) {
	switch {
	case c.Role() == grid.RoleStart:
		return 'S', ' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgbStart)
	case c.Role() == grid.RoleEnd:
		return 'E', ' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgbEnd)
	case !c.Walkable():
		return '█', '█', tcell.StyleDefault.Foreground(rgbBlock)
	case c.Mark() == grid.MarkPath:
		return '█', '█', tcell.StyleDefault.Foreground(rgbPath)
	case c.Mark() == grid.MarkVisited:
		return '█', '█', tcell.StyleDefault.Foreground(rgbVisited)
	case c.Mark() == grid.MarkFrontier:
		return '█', '█', tcell.StyleDefault.Foreground(rgbFrontier)
	default:
		return '·', ' ', tcell.StyleDefault.Foreground(rgbPlain)
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	offX, offY := gridOrigin(width, height, v.g)

	v.g.ForEach(func(c *grid.Cell) {
		left, right, style := cellGlyph(c)
		x, y := offX+c.Col*cellWidth, offY+c.Row
		v.screen.SetContent(x, y, left, nil, style)
		v.screen.SetContent(x+1, y, right, nil, style)
	})

	v.drawStatus(height - 1)
	v.screen.Show()
}

func (v *viewer) drawStatus(y int) {
	text := fmt.Sprintf(" enter:search  m:maze  c:clear  e:erase[%s]  q:quit ", onOff(v.eraseArmed))
	switch {
	case v.searching:
		text += "| running, esc cancels "
	case !v.hasRun:
	case v.lastErr != nil:
		text += fmt.Sprintf("| cancelled after %d expansions ", v.last.Expanded)
	case v.last.Found:
		text += fmt.Sprintf("| found: cost %g over %d cells, %d expanded ", v.last.Cost, len(v.last.Path), v.last.Expanded)
	default:
		text += fmt.Sprintf("| exhausted: %d expanded, no path ", v.last.Expanded)
	}

	style := tcell.StyleDefault.Foreground(rgbStatus)
	for i, r := range text {
		v.screen.SetContent(i, y, r, nil, style)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// handleEvent processes one terminal event while idle. Returns false to
// quit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		v.runSearch()
		return !v.quitting
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'c':
		v.g.Reset(true)
		v.hasRun = false
	case 'e':
		v.eraseArmed = !v.eraseArmed
		v.painting = false
	case 'm':
		v.carveMaze()
	}
	return true
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	row, col, onGrid := v.cellAt(x, y)

	buttons := ev.Buttons() & tcell.ButtonMask(0xff)
	pressed := buttons&tcell.Button1 != 0
	wasPressed := v.prevButtons&tcell.Button1 != 0
	v.prevButtons = buttons

	switch {
	case pressed && !wasPressed:
		if onGrid {
			v.mouseDown(row, col)
		}
	case !pressed && wasPressed:
		v.mouseUp()
	case onGrid:
		v.mouseMotion(row, col)
	}
}

// mouseDown opens a gesture: erase stroke, flag drag, or paint stroke,
// depending on what sits under the press.
func (v *viewer) mouseDown(row, col int) {
	c, err := v.g.At(row, col)
	if err != nil {
		return
	}
	switch {
	case v.eraseArmed && c.Role() == grid.RolePlain:
		v.erasing = true
	case c.Role() == grid.RoleStart:
		v.draggingStart = true
	case c.Role() == grid.RoleEnd:
		v.draggingEnd = true
	case v.canPaint(c):
		_ = v.g.SetWalkable(row, col, false)
		v.painting = true
	}
}

func (v *viewer) mouseUp() {
	v.draggingStart = false
	v.draggingEnd = false
	v.painting = false
	v.erasing = false
}

// mouseMotion continues the open gesture across the cell under the cursor.
// Flags never land on each other: drags skip non-plain cells.
func (v *viewer) mouseMotion(row, col int) {
	c, err := v.g.At(row, col)
	if err != nil {
		return
	}
	plain := c.Role() == grid.RolePlain
	switch {
	case v.draggingStart && plain:
		_ = v.g.MoveStart(row, col)
	case v.draggingEnd && plain:
		_ = v.g.MoveEnd(row, col)
	case v.erasing && plain:
		_ = v.g.SetWalkable(row, col, true)
	case v.painting && v.canPaint(c):
		_ = v.g.SetWalkable(row, col, false)
	}
}

func (v *viewer) canPaint(c *grid.Cell) bool {
	return !v.eraseArmed && c.Walkable() && c.Role() == grid.RolePlain
}

// runSearch executes one synchronous search run on the event goroutine.
// The OnStep hook keeps the screen live and the cancel keys responsive
// while the engine owns the grid.
func (v *viewer) runSearch() {
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.searching = true

	res, err := v.finder.FindPath(
		astar.WithContext(ctx),
		astar.WithCostModel(v.model),
		astar.WithOnStep(v.onStep),
	)

	v.searching = false
	v.cancel = nil
	cancel()
	v.last, v.lastErr, v.hasRun = res, err, true

	if err == nil {
		if res.Found {
			v.playTone(foundToneHz)
		} else {
			v.playTone(missedToneHz)
		}
	}
}

// onStep is the cooperative yield inside a run: pump pending input, repaint,
// then hold the frame for the configured delay.
func (v *viewer) onStep(*grid.Cell, grid.Mark) {
	v.pumpEvents()
	v.draw()
	if v.stepDelay > 0 {
		time.Sleep(v.stepDelay)
	}
}

// pumpEvents drains queued terminal events mid-run. Grid edits are shut out
// while the engine owns the grid; only cancel keys and resizes are honored.
func (v *viewer) pumpEvents() {
	for {
		select {
		case ev := <-v.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape:
					v.cancelSearch()
				case ev.Key() == tcell.KeyCtrlC:
					v.quitting = true
					v.cancelSearch()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					v.quitting = true
					v.cancelSearch()
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		default:
			return
		}
	}
}

func (v *viewer) cancelSearch() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *viewer) carveMaze() {
	v.g.Reset(true)
	v.hasRun = false
	_ = maze.Carve(v.g, maze.WithBraiding(v.braiding), maze.WithSeed(v.seed))
}

func (v *viewer) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	go func() {
		for {
			v.events <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-v.events:
			if !v.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			v.draw()
		}
	}
}

func (v *viewer) cleanup() {
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.rows, "rows", 20, "grid height in cells")
	flag.IntVar(&cfg.cols, "cols", 40, "grid width in cells")
	flag.DurationVar(&cfg.stepDelay, "step", 2*time.Millisecond, "pause after each search observation")
	flag.Float64Var(&cfg.braiding, "braid", 0.15, "maze braiding ratio in [0,1]; 0 keeps every dead end")
	flag.Int64Var(&cfg.seed, "seed", 0, "maze seed; 0 derives one from the clock")
	flag.BoolVar(&cfg.weighted, "weighted", false, "charge 10/14 movement costs instead of 1 per step")
	flag.BoolVar(&cfg.silent, "silent", false, "disable completion tones")
	flag.Parse()

	if cfg.rows < 2 || cfg.cols < 2 {
		fmt.Fprintln(os.Stderr, "pathview: -rows and -cols must be at least 2")
		os.Exit(2)
	}
	if cfg.braiding < 0 || cfg.braiding > 1 {
		fmt.Fprintln(os.Stderr, "pathview: -braid must be within [0,1]")
		os.Exit(2)
	}
	return cfg
}

func main() {
	view, err := newViewer(parseFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer view.cleanup()

	view.run()
}
