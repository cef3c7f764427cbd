package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/04pril/go-minefield/internal/theme"
)

// Theme-independent colours of the losing mine and unlit counter segments.
var (
	explodedBG   = rgb(210, 40, 40)
	explodedMine = rgb(0, 0, 0)
	segmentOff   = rgb(60, 20, 20)
)

func fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

func line(dst *ebiten.Image, x0, y0, x1, y1 int, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, false)
}

// bevel draws a frame whose top-left edges use tl and bottom-right edges br.
func bevel(dst *ebiten.Image, x, y, w, h int, fill, tl, br color.Color) {
	fillRect(dst, x, y, w, h, fill)
	line(dst, x, y, x+w, y, 2, tl)
	line(dst, x, y, x, y+h, 2, tl)
	line(dst, x+w, y, x+w, y+h, 2, br)
	line(dst, x, y+h, x+w, y+h, 2, br)
}

func drawRaisedRect(dst *ebiten.Image, x, y, w, h int, th theme.Theme) {
	bevel(dst, x, y, w, h, th.CellHidden, th.Light, th.Dark)
}

func drawSunkenRect(dst *ebiten.Image, x, y, w, h int, th theme.Theme) {
	bevel(dst, x, y, w, h, th.Panel, th.Dark, th.Light)
}

func drawText(dst *ebiten.Image, s string, f font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, f, x, y, clr)
}

func drawTextCentered(dst *ebiten.Image, s string, f font.Face, x, y, w int, clr color.Color) {
	tw := text.BoundString(f, s).Dx()
	text.Draw(dst, s, f, x+(w-tw)/2, y+13, clr)
}

func drawFlag(dst *ebiten.Image, px, py int, th theme.Theme) {
	vector.DrawFilledRect(dst, float32(px+11), float32(py+6), 2, 12, th.CellText, false)
	line(dst, px+11, py+6, px+5, py+10, 1.5, th.Flag)
	line(dst, px+5, py+10, px+11, py+14, 1.5, th.Flag)
	vector.DrawFilledRect(dst, float32(px+8), float32(py+8), 3, 4, th.Flag, false)
	vector.DrawFilledRect(dst, float32(px+7), float32(py+17), 9, 2, th.CellText, false)
}

func drawCross(dst *ebiten.Image, px, py, size int, clr color.Color) {
	line(dst, px+4, py+4, px+size-4, py+size-4, 2, clr)
	line(dst, px+size-4, py+4, px+4, py+size-4, 2, clr)
}

func drawMine(dst *ebiten.Image, px, py, size int, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(px+size/2), float32(py+size/2), 6, clr, false)
}

func drawOverlayPanel(dst *ebiten.Image, title string, lines []string, th theme.Theme) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	fillRect(dst, 0, 0, w, h, th.Overlay)
	pw, ph := min(560, w-36), min(280, h-36)
	px, py := (w-pw)/2, (h-ph)/2
	drawSunkenRect(dst, px, py, pw, ph, th)
	fillRect(dst, px+6, py+6, pw-12, ph-12, th.Panel)

	ff := basicfont.Face7x13
	drawText(dst, title, ff, px+16, py+24, th.HeaderText)
	y := py + 50
	for _, ln := range lines {
		if y > py+ph-18 {
			break
		}
		drawText(dst, ln, ff, px+16, y, th.HeaderText)
		y += 20
	}
}

func drawBanner(dst *ebiten.Image, label string, th theme.Theme) {
	const bw, bh = 220, 30
	x := (dst.Bounds().Dx() - bw) / 2
	fillRect(dst, x, 14, bw, bh, th.Overlay)
	drawTextCentered(dst, label, basicfont.Face7x13, x, 22, bw, th.Accent)
}

// drawDigital renders value on a seven-segment counter of the given width.
// Negative values show a leading minus.
func drawDigital(dst *ebiten.Image, x, y, value, digits int, clr color.Color) {
	fillRect(dst, x-3, y-3, digits*18+6, 28, color.RGBA{20, 20, 20, 255})

	limit := 1
	for i := 0; i < digits; i++ {
		limit *= 10
	}
	n := absInt(value)
	if n > limit-1 {
		n = limit - 1
	}
	chars := make([]int, digits)
	for i := digits - 1; i >= 0; i-- {
		chars[i] = n % 10
		n /= 10
	}
	if value < 0 {
		chars[0] = -1
	}
	for i, d := range chars {
		drawSevenSegDigit(dst, x+i*18, y, d, clr)
	}
}

// Segment masks for 0-9, bits a..g from high to low.
var segments = [10]int{
	0b1111110,
	0b0110000,
	0b1101101,
	0b1111001,
	0b0110011,
	0b1011011,
	0b1011111,
	0b1110000,
	0b1111111,
	0b1111011,
}

func drawSevenSegDigit(dst *ebiten.Image, x, y, d int, clr color.Color) {
	mask := 0
	switch {
	case d >= 0 && d <= 9:
		mask = segments[d]
	case d == -1:
		mask = 0b0000001
	}
	seg := func(bit int, rx, ry, rw, rh int) {
		c := segmentOff
		if mask&bit != 0 {
			c = clr
		}
		fillRect(dst, x+rx, y+ry, rw, rh, c)
	}
	seg(0b1000000, 3, 0, 10, 2)
	seg(0b0100000, 13, 2, 2, 9)
	seg(0b0010000, 13, 13, 2, 9)
	seg(0b0001000, 3, 22, 10, 2)
	seg(0b0000100, 1, 13, 2, 9)
	seg(0b0000010, 1, 2, 2, 9)
	seg(0b0000001, 3, 11, 10, 2)
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
