package session

import "image"

// Geometry maps between window pixels and board cells.
type Geometry struct {
	CellSize int
	Padding  int
	TopPanel int
	// StatusBar is the strip under the board holding the status line.
	StatusBar int
}

var DefaultGeometry = Geometry{CellSize: 24, Padding: 12, TopPanel: 68, StatusBar: 18}

// Layout is the window size for a w x h board.
func (g Geometry) Layout(w, h int) (int, int) {
	return w*g.CellSize + g.Padding*2, g.TopPanel + h*g.CellSize + g.StatusBar + g.Padding*2
}

// StatusOrigin is the text baseline of the status line of a w x h board.
func (g Geometry) StatusOrigin(w, h int) (int, int) {
	return g.Padding, g.TopPanel + h*g.CellSize + g.Padding + 13
}

// CellOrigin is the top-left pixel of cell (x, y).
func (g Geometry) CellOrigin(x, y int) (int, int) {
	return g.Padding + x*g.CellSize, g.TopPanel + y*g.CellSize
}

// CellAt returns the cell under pixel (px, py) on a w x h board.
func (g Geometry) CellAt(px, py, w, h int) (int, int, bool) {
	px -= g.Padding
	py -= g.TopPanel
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/g.CellSize, py/g.CellSize
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// FaceRect is the restart button centred in the top panel.
func (g Geometry) FaceRect(w, h int) image.Rectangle {
	const size = 28
	ww, _ := g.Layout(w, h)
	x := ww/2 - size/2
	return image.Rect(x, 20, x+size, 20+size)
}
