package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/04pril/go-minefield/internal/config"
	"github.com/04pril/go-minefield/internal/session"
	"github.com/04pril/go-minefield/internal/theme"
	"github.com/04pril/go-minefield/minefield"
)

const (
	touchMoveSlopPx   = 10
	touchLongPressDur = 360 * time.Millisecond
)

var helpLines = []string{
	"N: New game | 1/2/3: Beginner/Intermediate/Expert",
	"C: Custom board | Enter: Apply custom",
	"Left click: Reveal / Chord | Right click: Mark",
	"Touch: tap = reveal/chord | long-press = mark",
	"T: Theme | F1: Toggle help | Click smiley to restart",
}

type touchStart struct {
	X, Y         int
	LastX, LastY int
	At           time.Time
}

// game adapts a session to ebiten: input becomes session calls and Draw
// renders whatever the current engine reports.
type game struct {
	s        *session.Session
	geo      session.Geometry
	custom   *session.CustomDialog
	themes   []theme.Theme
	themeIdx int
	showHelp bool
	font     font.Face
	touches  map[ebiten.TouchID]touchStart
	log      logrus.FieldLogger
}

func newGame(s *session.Session, themeIdx int, log logrus.FieldLogger) *game {
	g := &game{
		s:        s,
		geo:      session.DefaultGeometry,
		custom:   session.NewCustomDialog(),
		themes:   theme.All(),
		themeIdx: themeIdx,
		font:     basicfont.Face7x13,
		touches:  map[ebiten.TouchID]touchStart{},
		log:      log,
	}
	g.resizeWindow()
	return g
}

func (g *game) resizeWindow() {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Go Minesweeper - %s", g.s.Difficulty().Name))
}

func (g *game) Layout(_, _ int) (int, int) {
	b := g.s.Board()
	return g.geo.Layout(b.Width(), b.Height())
}

func (g *game) restart() {
	if err := g.s.Restart(); err != nil {
		g.log.WithError(err).Error("restart failed")
	}
}

func (g *game) setDifficulty(d config.Difficulty) {
	if err := g.s.SetDifficulty(d); err != nil {
		g.log.WithError(err).Error("cannot switch difficulty")
		return
	}
	g.resizeWindow()
}

func (g *game) cellAt(mx, my int) (int, int, bool) {
	b := g.s.Board()
	return g.geo.CellAt(mx, my, b.Width(), b.Height())
}

func (g *game) handleClickAt(mx, my int) {
	b := g.s.Board()
	if pointInRect(mx, my, g.geo.FaceRect(b.Width(), b.Height())) {
		g.restart()
		return
	}
	if g.showHelp {
		g.showHelp = false
		return
	}
	x, y, ok := g.cellAt(mx, my)
	if !ok {
		return
	}
	if _, err := g.s.Click(x, y); err != nil {
		g.log.WithError(err).Warn("click ignored")
	}
}

func (g *game) handleMarkAt(mx, my int) {
	if g.showHelp {
		return
	}
	x, y, ok := g.cellAt(mx, my)
	if !ok {
		return
	}
	if _, err := g.s.Mark(x, y); err != nil {
		g.log.WithError(err).Warn("mark ignored")
	}
}

func (g *game) handleTouchInput() {
	for _, id := range ebiten.TouchIDs() {
		x, y := ebiten.TouchPosition(id)
		st, ok := g.touches[id]
		if !ok {
			st = touchStart{X: x, Y: y, At: time.Now()}
		}
		st.LastX, st.LastY = x, y
		g.touches[id] = st
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		st, ok := g.touches[id]
		if !ok {
			continue
		}
		delete(g.touches, id)
		if absInt(st.LastX-st.X) > touchMoveSlopPx || absInt(st.LastY-st.Y) > touchMoveSlopPx {
			continue
		}
		if time.Since(st.At) >= touchLongPressDur {
			g.handleMarkAt(st.LastX, st.LastY)
			continue
		}
		g.handleClickAt(st.LastX, st.LastY)
	}
}

func (g *game) handleGlobalKeys() {
	presetKeys := [][2]ebiten.Key{
		{ebiten.Key1, ebiten.KeyB},
		{ebiten.Key2, ebiten.KeyI},
		{ebiten.Key3, ebiten.KeyE},
	}
	for i, d := range config.Presets() {
		if inpututil.IsKeyJustPressed(presetKeys[i][0]) || inpututil.IsKeyJustPressed(presetKeys[i][1]) {
			g.setDifficulty(d)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themeIdx = theme.Next(g.themeIdx)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHelp = !g.showHelp
		g.custom.Open = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.custom.Open = !g.custom.Open
		g.showHelp = false
	}
}

func (g *game) handleCustomDialog() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.custom.Open = false
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.custom.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.custom.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.custom.Adjust(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.custom.Adjust(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.setDifficulty(g.custom.Difficulty())
		g.custom.Open = false
	}
}

func (g *game) Update() error {
	g.handleGlobalKeys()
	if g.custom.Open {
		g.handleCustomDialog()
		return nil
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClickAt(mx, my)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.handleMarkAt(mx, my)
	}
	g.handleTouchInput()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	th := g.themes[g.themeIdx]
	screen.Fill(th.BG)

	b := g.s.Board()
	st := b.Status()
	windowW, _ := g.Layout(0, 0)
	pad := g.geo.Padding

	drawRaisedRect(screen, pad-2, 10, windowW-(pad-2)*2, g.geo.TopPanel-18, th)
	fillRect(screen, pad+4, 16, windowW-pad*2-8, 40, th.Panel)
	drawDigital(screen, pad+10, 20, st.MinesLeft(), 3, th.Digit)

	face := g.geo.FaceRect(b.Width(), b.Height())
	drawRaisedRect(screen, face.Min.X, face.Min.Y, face.Dx(), face.Dy(), th)
	drawTextCentered(screen, faceFor(st.Outcome), g.font, face.Min.X, face.Min.Y+6, face.Dx(), th.HeaderText)

	bx, by := g.geo.CellOrigin(0, 0)
	cs := g.geo.CellSize
	drawSunkenRect(screen, bx-2, by-2, b.Width()*cs+4, b.Height()*cs+4, th)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v, _ := b.Cell(x, y)
			px, py := g.geo.CellOrigin(x, y)
			g.drawCell(screen, px, py, v, st.Outcome, th)
		}
	}

	sx, sy := g.geo.StatusOrigin(b.Width(), b.Height())
	drawText(screen, g.s.StatusText(), g.font, sx, sy, th.HeaderTextSoft)

	if g.showHelp {
		drawOverlayPanel(screen, "HELP", helpLines, th)
	}
	if g.custom.Open {
		g.drawCustomDialog(screen, th)
	}
	switch st.Outcome {
	case minefield.Won:
		drawBanner(screen, "YOU WIN!", th)
	case minefield.Lost:
		drawBanner(screen, "BOOM!", th)
	}
}

func faceFor(o minefield.Outcome) string {
	switch o {
	case minefield.Won:
		return "B)"
	case minefield.Lost:
		return "X("
	default:
		return ":)"
	}
}

func (g *game) drawCustomDialog(screen *ebiten.Image, th theme.Theme) {
	w, h := g.Layout(0, 0)
	pw, ph := min(440, w-40), 210
	px, py := (w-pw)/2, (h-ph)/2
	fillRect(screen, 0, 0, w, h, th.Overlay)
	drawSunkenRect(screen, px, py, pw, ph, th)
	fillRect(screen, px+6, py+6, pw-12, ph-12, th.Panel)

	drawText(screen, "CUSTOM BOARD", g.font, px+16, py+24, th.HeaderText)
	drawText(screen, "Left/Right: field  Up/Down: value  Enter: start  Esc: cancel", g.font, px+16, py+44, th.HeaderTextSoft)

	vals := g.custom.Values()
	for i, v := range vals {
		f := session.Field(i)
		label := f.String()
		if g.custom.Field == f {
			label = "> " + label
		}
		x := px + 24 + i*130
		drawText(screen, label, g.font, x, py+96, th.HeaderText)
		drawText(screen, fmt.Sprintf("%d", v), g.font, x+18, py+124, th.Accent)
	}
	drawText(screen, fmt.Sprintf("Max mines: %d", config.MaxMines(vals[0], vals[1])), g.font, px+16, py+170, th.HeaderTextSoft)
}

func (g *game) drawCell(screen *ebiten.Image, px, py int, v minefield.CellView, o minefield.Outcome, th theme.Theme) {
	cs := g.geo.CellSize
	if !v.Uncovered {
		drawRaisedRect(screen, px, py, cs, cs, th)
		// Every cell still covered after a win holds a mine.
		if v.Marked || o == minefield.Won {
			drawFlag(screen, px, py, th)
		}
		if v.WrongMark {
			drawCross(screen, px, py, cs, th.WrongFlag)
		}
		return
	}

	fillRect(screen, px, py, cs, cs, th.CellRevealed)
	strokeRect(screen, px, py, cs, cs, th.CellGrid)
	if v.Mine {
		mineColor := th.Mine
		if v.Exploded {
			fillRect(screen, px, py, cs, cs, explodedBG)
			mineColor = explodedMine
		}
		drawMine(screen, px, py, cs, mineColor)
		return
	}
	if v.Adjacent > 0 {
		drawTextCentered(screen, fmt.Sprintf("%d", v.Adjacent), g.font, px, py+5, cs, th.NumberColor(v.Adjacent))
	}
}
