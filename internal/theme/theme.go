// Package theme holds the colour palettes of the game window.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

type Theme struct {
	Name string

	BG, Panel   color.Color
	Light, Dark color.Color // bevel highlight and shadow

	CellHidden, CellRevealed, CellGrid color.Color
	CellText                           color.Color
	Mine, Flag, WrongFlag              color.Color

	Accent  color.Color
	Overlay color.Color
	Digit   color.Color // seven-segment counter

	HeaderText, HeaderTextSoft color.Color

	// Numbers are the colours of adjacency counts 1 to 8.
	Numbers [8]color.Color
}

// NumberColor is the colour of an adjacency count; 0 and out-of-range counts
// fall back to the cell text colour.
func (t Theme) NumberColor(n int) color.Color {
	if n < 1 || n > len(t.Numbers) {
		return t.CellText
	}
	return t.Numbers[n-1]
}

var ErrUnknownTheme = errors.New("unknown theme")

func hex(v uint32) color.Color {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func gray(v uint8) color.Color {
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

var classicNumbers = [8]color.Color{
	hex(0x1919dc), hex(0x008200), hex(0xd21414), hex(0x000087),
	hex(0x820000), hex(0x008080), gray(0), gray(110),
}

func classic() Theme {
	return Theme{
		Name:           "Classic",
		BG:             gray(192),
		Panel:          gray(192),
		Light:          gray(255),
		Dark:           gray(128),
		CellHidden:     gray(192),
		CellRevealed:   gray(214),
		CellGrid:       gray(155),
		CellText:       gray(15),
		Mine:           gray(10),
		Flag:           hex(0xd22020),
		WrongFlag:      hex(0xb40000),
		Accent:         hex(0x2080ff),
		Overlay:        color.RGBA{A: 120},
		Digit:          hex(0xd72828),
		HeaderText:     gray(12),
		HeaderTextSoft: gray(30),
		Numbers:        classicNumbers,
	}
}

func dark() Theme {
	t := Theme{
		Name:           "Dark",
		BG:             hex(0x22242a),
		Panel:          hex(0x30333c),
		Light:          hex(0x4e525d),
		Dark:           hex(0x12141a),
		CellHidden:     hex(0x3e424e),
		CellRevealed:   hex(0x565a66),
		CellGrid:       hex(0x1e2129),
		CellText:       hex(0xf2f2f5),
		Mine:           gray(245),
		Flag:           hex(0xff5858),
		WrongFlag:      hex(0xff1919),
		Accent:         hex(0x6bc7ff),
		Overlay:        color.RGBA{A: 140},
		Digit:          hex(0xff6262),
		HeaderText:     gray(245),
		HeaderTextSoft: hex(0xd7d7e1),
		Numbers:        classicNumbers,
	}
	// Dark blue 1s disappear on the dark cells.
	t.Numbers[0] = hex(0x78aaff)
	return t
}

var all = []Theme{classic(), dark()}

// All returns the themes in cycling order. The first one is the default.
func All() []Theme {
	return append([]Theme(nil), all...)
}

func Names() []string {
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	return names
}

// Index finds a theme by name, ignoring case.
func Index(name string) (int, error) {
	for i, t := range all {
		if strings.EqualFold(t.Name, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w %q (have %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
}

// Next is the index after i, wrapping around.
func Next(i int) int {
	return (i + 1) % len(all)
}
