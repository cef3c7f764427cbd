// Package minefield implements the rules of Minesweeper: mine placement,
// adjacency counting, flood uncovering of empty regions, marking and win/loss
// detection. It has no knowledge of windows or input devices; presentation
// code drives an Engine through coordinates and renders what CellView and
// Status report.
package minefield

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Source supplies the random draws used for mine placement.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type Option func(*Engine)

// WithSource places mines using src instead of the process-wide generator.
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithSeed places mines deterministically from seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.src = rand.New(rand.NewPCG(seed, seed)) }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine owns one game. A new game needs a new Engine.
type Engine struct {
	width, height int
	mines         int
	cells         []cell

	remainingSafe int
	marked        int
	gameOver      bool
	outcome       Outcome
	exploded      Point
	hasExploded   bool

	src Source
	log logrus.FieldLogger
}

// New builds a width x height board holding mines mines, placed uniformly at
// random. mines must leave at least one safe cell.
func New(width, height, mines int, opts ...Option) (*Engine, error) {
	if err := validate(width, height, mines); err != nil {
		return nil, err
	}
	e := &Engine{
		width:  width,
		height: height,
		mines:  mines,
		src:    globalSource{},
		log:    log,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cells = make([]cell, width*height)
	e.placeMines()
	e.remainingSafe = width*height - mines
	e.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  mines,
	}).Debug("minefield created")
	return e, nil
}

// placeMines draws coordinates until mines distinct cells are mined.
// The first click gets no protection.
func (e *Engine) placeMines() {
	for placed := 0; placed < e.mines; {
		x := e.src.IntN(e.width)
		y := e.src.IntN(e.height)
		c := e.at(x, y)
		if c.mine {
			continue
		}
		c.mine = true
		placed++
	}
}

func (e *Engine) at(x, y int) *cell {
	return &e.cells[y*e.width+x]
}

func (e *Engine) Width() int  { return e.width }
func (e *Engine) Height() int { return e.height }

func (e *Engine) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < e.width && y < e.height
}

func (e *Engine) check(x, y int) error {
	if !e.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: e.width, Height: e.height}
	}
	return nil
}

func (e *Engine) around(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if e.InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

func (e *Engine) countMines(x, y int) int {
	n := 0
	e.around(x, y, func(nx, ny int) {
		if e.at(nx, ny).mine {
			n++
		}
	})
	return n
}

// Reveal uncovers (x, y). An empty cell uncovers its whole zero region and
// the numbered border around it. Marked and already uncovered cells, and any
// cell after the game has ended, are left alone and yield Unchanged.
func (e *Engine) Reveal(x, y int) (Result, error) {
	if err := e.check(x, y); err != nil {
		return Unchanged, err
	}
	return e.reveal(x, y), nil
}

func (e *Engine) reveal(x, y int) Result {
	if e.gameOver {
		return Unchanged
	}
	c := e.at(x, y)
	if c.marked || c.uncovered {
		return Unchanged
	}
	if c.mine {
		c.uncovered = true
		e.lose(x, y)
		return ResultLost
	}

	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cc := e.at(p.X, p.Y)
		if cc.marked || cc.uncovered {
			continue
		}
		cc.uncovered = true
		e.remainingSafe--
		cc.adjacent = e.countMines(p.X, p.Y)
		if cc.adjacent != 0 {
			continue
		}
		e.around(p.X, p.Y, func(nx, ny int) {
			if n := e.at(nx, ny); !n.uncovered && !n.marked {
				stack = append(stack, Point{nx, ny})
			}
		})
	}

	if e.remainingSafe == 0 {
		e.win()
		return ResultWon
	}
	return Revealed
}

func (e *Engine) lose(x, y int) {
	e.gameOver = true
	e.outcome = Lost
	e.exploded = Point{x, y}
	e.hasExploded = true
	e.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("mine hit")
}

func (e *Engine) win() {
	e.gameOver = true
	e.outcome = Won
	e.log.WithField("marked", e.marked).Debug("all safe cells uncovered")
}

// ToggleMark flips the mark on a covered cell. Uncovered cells and finished
// games yield MarkUnchanged.
func (e *Engine) ToggleMark(x, y int) (MarkResult, error) {
	if err := e.check(x, y); err != nil {
		return MarkUnchanged, err
	}
	c := e.at(x, y)
	if e.gameOver || c.uncovered {
		return MarkUnchanged, nil
	}
	c.marked = !c.marked
	if c.marked {
		e.marked++
		return Marked, nil
	}
	e.marked--
	return Unmarked, nil
}

// Chord uncovers every covered, unmarked neighbour of an uncovered numbered
// cell once the player has marked as many neighbours as the number says.
func (e *Engine) Chord(x, y int) (Result, error) {
	if err := e.check(x, y); err != nil {
		return Unchanged, err
	}
	c := e.at(x, y)
	if e.gameOver || !c.uncovered || c.mine || c.adjacent == 0 {
		return Unchanged, nil
	}
	flags := 0
	e.around(x, y, func(nx, ny int) {
		if e.at(nx, ny).marked {
			flags++
		}
	})
	if flags != c.adjacent {
		return Unchanged, nil
	}

	res := Unchanged
	e.around(x, y, func(nx, ny int) {
		switch r := e.reveal(nx, ny); r {
		case ResultLost, ResultWon:
			res = r
		case Revealed:
			if res == Unchanged {
				res = Revealed
			}
		}
	})
	return res, nil
}

// RevealAll sweeps the board open in row-major order, leaving marked cells
// covered. On a game still in progress the sweep plays by the normal rules,
// so the first mine it meets loses the game. Once the game is over, the
// remaining cells are uncovered for display only and the outcome and
// exploded cell stay as they were.
func (e *Engine) RevealAll() {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			c := e.at(x, y)
			if c.uncovered || c.marked {
				continue
			}
			if !e.gameOver {
				e.reveal(x, y)
				continue
			}
			c.uncovered = true
			if !c.mine {
				e.remainingSafe--
				c.adjacent = e.countMines(x, y)
			}
		}
	}
}

// Apply dispatches m to Reveal, ToggleMark or Chord.
func (e *Engine) Apply(m Move) (Result, error) {
	switch m.Type {
	case MoveReveal:
		return e.Reveal(m.X, m.Y)
	case MoveChord:
		return e.Chord(m.X, m.Y)
	case MoveMark:
		r, err := e.ToggleMark(m.X, m.Y)
		if err != nil || r == MarkUnchanged {
			return Unchanged, err
		}
		return Toggled, nil
	default:
		return Unchanged, fmt.Errorf("minefield: invalid move type %#x", byte(m.Type))
	}
}

// Cell reports what may be shown of (x, y). Mine identity of covered cells
// is never exposed.
func (e *Engine) Cell(x, y int) (CellView, error) {
	if err := e.check(x, y); err != nil {
		return CellView{}, err
	}
	c := e.at(x, y)
	v := CellView{Uncovered: c.uncovered, Marked: c.marked}
	if c.uncovered {
		v.Mine = c.mine
		if !c.mine {
			v.Adjacent = c.adjacent
		}
		v.Exploded = e.hasExploded && e.exploded == Point{x, y}
	}
	if e.outcome == Lost && c.marked && !c.mine {
		v.WrongMark = true
	}
	return v, nil
}

func (e *Engine) Status() Status {
	return Status{
		Width:         e.width,
		Height:        e.height,
		Mines:         e.mines,
		Marked:        e.marked,
		RemainingSafe: e.remainingSafe,
		Outcome:       e.outcome,
		GameOver:      e.gameOver,
	}
}

func (e *Engine) Outcome() Outcome { return e.outcome }
func (e *Engine) GameOver() bool   { return e.gameOver }

// Exploded returns the mine that ended the game, if one did.
func (e *Engine) Exploded() (Point, bool) {
	return e.exploded, e.hasExploded
}

// String draws the board as the player sees it: '#' covered, 'F' marked,
// '.' empty, digits for counts and '*' for uncovered mines.
func (e *Engine) String() string {
	var sb strings.Builder
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			c := e.at(x, y)
			switch {
			case c.marked:
				sb.WriteByte('F')
			case !c.uncovered:
				sb.WriteByte('#')
			case c.mine:
				sb.WriteByte('*')
			case c.adjacent == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + c.adjacent))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
