// Package config holds the board presets and the command-line settings of the
// game window.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/04pril/go-minefield/internal/theme"
)

// Difficulty is a named board size. The engine never sees the name.
type Difficulty struct {
	Name          string
	Width, Height int
	Mines         int
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s [%dx%d/%d]", d.Name, d.Width, d.Height, d.Mines)
}

var (
	Beginner     = Difficulty{Name: "Beginner", Width: 9, Height: 9, Mines: 10}
	Intermediate = Difficulty{Name: "Intermediate", Width: 16, Height: 16, Mines: 40}
	Expert       = Difficulty{Name: "Expert", Width: 30, Height: 16, Mines: 99}
)

const CustomName = "Custom"

// Bounds of a custom board.
const (
	MinWidth  = 9
	MaxWidth  = 60
	MinHeight = 9
	MaxHeight = 32
	MinMines  = 10
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func Presets() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Expert}
}

// Lookup finds a preset by name, ignoring case.
func Lookup(name string) (Difficulty, error) {
	for _, d := range Presets() {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w %q", ErrUnknownDifficulty, name)
}

// MaxMines is the largest mine count a w x h board accepts.
func MaxMines(w, h int) int {
	return w*h - 1
}

// Custom builds a custom difficulty, clamping each value into range.
func Custom(w, h, mines int) Difficulty {
	w = clamp(w, MinWidth, MaxWidth)
	h = clamp(h, MinHeight, MaxHeight)
	return Difficulty{
		Name:   CustomName,
		Width:  w,
		Height: h,
		Mines:  clamp(mines, MinMines, MaxMines(w, h)),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type Config struct {
	Difficulty Difficulty
	// Seed fixes mine placement when non-zero.
	Seed     uint64
	Theme    string
	LogLevel logrus.Level
}

func Default() Config {
	return Config{
		Difficulty: Beginner,
		Theme:      "Classic",
		LogLevel:   logrus.InfoLevel,
	}
}

type flags struct {
	fs                   *flag.FlagSet
	diff, theme, level   *string
	width, height, mines *int
	seed                 *uint64
}

func newFlags() *flags {
	def := Default()
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &flags{
		fs:     fs,
		diff:   fs.String("difficulty", def.Difficulty.Name, "beginner, intermediate or expert"),
		width:  fs.Int("width", 0, fmt.Sprintf("custom board width (%d-%d)", MinWidth, MaxWidth)),
		height: fs.Int("height", 0, fmt.Sprintf("custom board height (%d-%d)", MinHeight, MaxHeight)),
		mines:  fs.Int("mines", 0, "custom mine count"),
		seed:   fs.Uint64("seed", 0, "mine placement seed, 0 for random"),
		theme:  fs.String("theme", def.Theme, "colour theme: "+strings.Join(theme.Names(), ", ")),
		level:  fs.String("log-level", def.LogLevel.String(), "logrus level"),
	}
}

// Usage writes the flag summary to w.
func Usage(w io.Writer) {
	f := newFlags()
	f.fs.SetOutput(w)
	fmt.Fprintln(w, "Usage of minesweeper:")
	f.fs.PrintDefaults()
}

// Load parses command-line arguments (without the program name).
// Any of -width, -height or -mines selects a custom board, starting from the
// values of -difficulty for the flags left out. -h yields an error matching
// flag.ErrHelp.
func Load(args []string) (Config, error) {
	f := newFlags()
	if err := f.fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if f.fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments %q", f.fs.Args())
	}

	d, err := Lookup(*f.diff)
	if err != nil {
		return Config{}, err
	}
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if set["width"] || set["height"] || set["mines"] {
		w, h, m := d.Width, d.Height, d.Mines
		if set["width"] {
			w = *f.width
		}
		if set["height"] {
			h = *f.height
		}
		if set["mines"] {
			m = *f.mines
		}
		d = Custom(w, h, m)
	}

	ti, err := theme.Index(*f.theme)
	if err != nil {
		return Config{}, err
	}
	lvl, err := logrus.ParseLevel(*f.level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	return Config{
		Difficulty: d,
		Seed:       *f.seed,
		Theme:      theme.Names()[ti],
		LogLevel:   lvl,
	}, nil
}
