package minefield

import "fmt"

// Point addresses a cell; X is the column and Y the row.
type Point struct{ X, Y int }

type cell struct {
	mine      bool
	uncovered bool
	marked    bool
	adjacent  int
}

// Outcome is the state of a game.
type Outcome int

const (
	None Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result describes what a move did to the board.
type Result int

const (
	Unchanged Result = iota
	Revealed
	// Toggled is only produced by mark moves passed to Apply.
	Toggled
	ResultWon
	ResultLost
)

func (r Result) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Revealed:
		return "revealed"
	case Toggled:
		return "toggled"
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// MarkResult is returned by ToggleMark.
type MarkResult int

const (
	MarkUnchanged MarkResult = iota
	Marked
	Unmarked
)

// CellView is the read-only picture of a cell handed to presentation code.
// Mine and Adjacent are only populated once the cell is uncovered.
type CellView struct {
	Uncovered bool
	Marked    bool
	Mine      bool
	Adjacent  int
	// Exploded is set on the mine that lost the game.
	Exploded bool
	// WrongMark is set after a loss on marked cells that hold no mine.
	WrongMark bool
}

// Status summarises the counters of a game.
type Status struct {
	Width         int
	Height        int
	Mines         int
	Marked        int
	RemainingSafe int
	Outcome       Outcome
	GameOver      bool
}

// MinesLeft is the mine counter a player sees: mines minus marks. It goes
// negative when the player over-marks.
func (s Status) MinesLeft() int {
	return s.Mines - s.Marked
}

type MoveType byte

const (
	MoveReveal MoveType = iota + 1
	MoveMark
	MoveChord
)

// Move is one player action keyed by grid coordinates.
type Move struct {
	X    int
	Y    int
	Type MoveType
}

func (m Move) String() string {
	msg := fmt.Sprintf("(%d, %d) ", m.X, m.Y)
	switch m.Type {
	case MoveReveal:
		return msg + "Reveal"
	case MoveMark:
		return msg + "Mark"
	case MoveChord:
		return msg + "Chord"
	default:
		return msg + "UNKNOWN"
	}
}
