package minefield

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfiguration is matched by every *ConfigError.
	ErrInvalidConfiguration = errors.New("minefield: invalid configuration")
	// ErrOutOfBounds is matched by every *BoundsError.
	ErrOutOfBounds = errors.New("minefield: coordinate out of bounds")
)

// ConfigError reports board parameters rejected by New.
type ConfigError struct {
	Width  int
	Height int
	Mines  int
}

func (e *ConfigError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.Mines < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.Mines)
	case e.Height > math.MaxInt/e.Width:
		return fmt.Sprintf("board of %dx%d cells is too large", e.Width, e.Height)
	default:
		return fmt.Sprintf("not enough space for %d mines (%dx%d board needs at least one safe cell)", e.Mines, e.Width, e.Height)
	}
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// BoundsError reports a coordinate outside the board.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) outside %dx%d board", e.X, e.Y, e.Width, e.Height)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

func validate(width, height, mines int) error {
	if width <= 0 || height <= 0 || mines < 0 || height > math.MaxInt/width || mines >= width*height {
		return &ConfigError{Width: width, Height: height, Mines: mines}
	}
	return nil
}
