package session

import (
	"image"
	"testing"
)

func TestLayout(t *testing.T) {
	w, h := DefaultGeometry.Layout(9, 9)
	if w != 240 || h != 326 {
		t.Errorf("Layout(9, 9) = %d, %d", w, h)
	}
}

func TestStatusLineClearsBoardAndPanel(t *testing.T) {
	g := DefaultGeometry
	// basicfont.Face7x13 reaches 11px above the baseline and 2px below it.
	const ascent, descent = 11, 2
	for _, size := range [][2]int{{9, 9}, {16, 16}, {30, 16}} {
		w, h := size[0], size[1]
		_, winH := g.Layout(w, h)
		_, boardBottom := g.CellOrigin(0, h)
		x, y := g.StatusOrigin(w, h)
		if x != g.Padding {
			t.Errorf("%dx%d: status x = %d", w, h, x)
		}
		// The sunken board frame extends 2px past the last row.
		if y-ascent <= boardBottom+2 {
			t.Errorf("%dx%d: status top %d overlaps board frame at %d", w, h, y-ascent, boardBottom+2)
		}
		if y+descent > winH {
			t.Errorf("%dx%d: status bottom %d below window %d", w, h, y+descent, winH)
		}
		if y-ascent < g.TopPanel {
			t.Errorf("%dx%d: status line inside the top panel", w, h)
		}
	}
}

func TestCellAt(t *testing.T) {
	g := DefaultGeometry
	tests := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{12, 68, 0, 0, true},
		{35, 91, 0, 0, true},
		{36, 92, 1, 1, true},
		{11, 68, 0, 0, false},
		{12, 67, 0, 0, false},
		{12 + 9*24 - 1, 68 + 9*24 - 1, 8, 8, true},
		{12 + 9*24, 68, 0, 0, false},
		{12, 68 + 9*24, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := g.CellAt(tt.px, tt.py, 9, 9)
		if ok != tt.ok || (ok && (x != tt.x || y != tt.y)) {
			t.Errorf("CellAt(%d, %d) = %d, %d, %v; want %d, %d, %v", tt.px, tt.py, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}

func TestCellOriginRoundTrip(t *testing.T) {
	g := DefaultGeometry
	for y := 0; y < 16; y++ {
		for x := 0; x < 30; x++ {
			px, py := g.CellOrigin(x, y)
			gx, gy, ok := g.CellAt(px+g.CellSize/2, py+g.CellSize/2, 30, 16)
			if !ok || gx != x || gy != y {
				t.Fatalf("cell (%d,%d) maps back to (%d,%d) %v", x, y, gx, gy, ok)
			}
		}
	}
}

func TestFaceRect(t *testing.T) {
	if got, want := DefaultGeometry.FaceRect(9, 9), image.Rect(106, 20, 134, 48); got != want {
		t.Errorf("FaceRect = %v, want %v", got, want)
	}
}

func TestCustomDialog(t *testing.T) {
	c := NewCustomDialog()
	if got := c.Values(); got != [3]int{24, 20, 99} {
		t.Fatalf("initial values = %v", got)
	}

	c.Prev()
	if c.Field != FieldMines {
		t.Errorf("Prev from Width = %v", c.Field)
	}
	c.Next()
	if c.Field != FieldWidth {
		t.Errorf("Next from Mines = %v", c.Field)
	}

	for i := 0; i < 30; i++ {
		c.Adjust(-1)
	}
	if got := c.Values(); got[0] != 9 {
		t.Errorf("width after shrinking = %d, want 9", got[0])
	}

	c.Next()
	c.Next()
	c.Adjust(10000)
	if got := c.Values(); got[2] != 9*20-1 {
		t.Errorf("mines = %d, want %d", got[2], 9*20-1)
	}

	c.Prev()
	c.Adjust(-20)
	d := c.Difficulty()
	if d.Height != 9 || d.Mines != 80 || d.Name != "Custom" {
		t.Errorf("difficulty = %v", d)
	}
}

func TestFieldString(t *testing.T) {
	if FieldHeight.String() != "Height" {
		t.Errorf("FieldHeight = %q", FieldHeight.String())
	}
}
