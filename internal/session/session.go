// Package session keeps the state a game window needs between frames: the
// engine of the current game, the chosen difficulty and the custom-board
// dialog. Nothing here depends on the graphics library.
package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/04pril/go-minefield/internal/config"
	"github.com/04pril/go-minefield/minefield"
	"github.com/sirupsen/logrus"
)

type Option func(*Session)

// WithSeed makes every game of the session reproducible. Game n of a session
// seeded with s always has the same layout.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.seeds = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.log = l }
}

// Session owns exactly one engine at a time; starting a new game replaces it.
type Session struct {
	diff   config.Difficulty
	engine *minefield.Engine
	games  int

	seeds *rand.Rand
	log   logrus.FieldLogger
}

func New(d config.Difficulty, opts ...Option) (*Session, error) {
	s := &Session{diff: d, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards the current game and deals a new one of the same size.
func (s *Session) Restart() error {
	opts := []minefield.Option{minefield.WithLogger(s.log)}
	if s.seeds != nil {
		opts = append(opts, minefield.WithSeed(s.seeds.Uint64()))
	}
	e, err := minefield.New(s.diff.Width, s.diff.Height, s.diff.Mines, opts...)
	if err != nil {
		return fmt.Errorf("new %s game: %w", s.diff.Name, err)
	}
	s.engine = e
	s.games++
	s.log.WithFields(logrus.Fields{
		"difficulty": s.diff.Name,
		"width":      s.diff.Width,
		"height":     s.diff.Height,
		"mines":      s.diff.Mines,
		"game":       s.games,
	}).Info("new game")
	return nil
}

// SetDifficulty switches board size and starts a new game. On error the
// previous game is kept.
func (s *Session) SetDifficulty(d config.Difficulty) error {
	prev := s.diff
	s.diff = d
	if err := s.Restart(); err != nil {
		s.diff = prev
		return err
	}
	return nil
}

func (s *Session) Difficulty() config.Difficulty { return s.diff }

// Board is the current game. It is replaced by Restart and SetDifficulty.
func (s *Session) Board() *minefield.Engine { return s.engine }

// Click is a primary click on (x, y): a covered cell is revealed, an
// uncovered one is chorded. Losing opens the whole board.
func (s *Session) Click(x, y int) (minefield.Result, error) {
	if s.engine.GameOver() {
		return minefield.Unchanged, nil
	}
	v, err := s.engine.Cell(x, y)
	if err != nil {
		return minefield.Unchanged, err
	}
	move := minefield.Move{X: x, Y: y, Type: minefield.MoveReveal}
	if v.Uncovered {
		move.Type = minefield.MoveChord
	}
	res, err := s.engine.Apply(move)
	if err != nil {
		return res, err
	}
	switch res {
	case minefield.ResultLost:
		s.engine.RevealAll()
		s.logEnd(move)
	case minefield.ResultWon:
		s.logEnd(move)
	}
	return res, nil
}

// Mark toggles the mark on (x, y).
func (s *Session) Mark(x, y int) (minefield.Result, error) {
	return s.engine.Apply(minefield.Move{X: x, Y: y, Type: minefield.MoveMark})
}

func (s *Session) logEnd(last minefield.Move) {
	st := s.engine.Status()
	s.log.WithFields(logrus.Fields{
		"outcome": st.Outcome,
		"move":    last,
		"marked":  st.Marked,
		"game":    s.games,
	}).Info("game over")
}

// StatusText is the one-line summary shown under the board.
func (s *Session) StatusText() string {
	st := s.engine.Status()
	line := fmt.Sprintf("Mines: %d  Marked: %d  Left: %d", st.Mines, st.Marked, st.MinesLeft())
	switch st.Outcome {
	case minefield.Won:
		line += "  You win!"
	case minefield.Lost:
		line += "  Game over"
	}
	return line
}
