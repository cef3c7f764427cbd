package session

import "github.com/04pril/go-minefield/internal/config"

type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldMines
	numFields
)

func (f Field) String() string {
	return [...]string{"Width", "Height", "Mines"}[f]
}

// CustomDialog is the model behind the custom-board dialog: a cursor over
// three fields adjusted with the arrow keys.
type CustomDialog struct {
	Open  bool
	Field Field
	d     config.Difficulty
}

func NewCustomDialog() *CustomDialog {
	return &CustomDialog{d: config.Custom(24, 20, 99)}
}

func (c *CustomDialog) Next() { c.Field = (c.Field + 1) % numFields }
func (c *CustomDialog) Prev() { c.Field = (c.Field + numFields - 1) % numFields }

// Adjust changes the selected field by delta. Shrinking the board pulls the
// mine count down with it.
func (c *CustomDialog) Adjust(delta int) {
	w, h, m := c.d.Width, c.d.Height, c.d.Mines
	switch c.Field {
	case FieldWidth:
		w += delta
	case FieldHeight:
		h += delta
	case FieldMines:
		m += delta
	}
	c.d = config.Custom(w, h, m)
}

// Values are width, height and mines in field order.
func (c *CustomDialog) Values() [numFields]int {
	return [numFields]int{c.d.Width, c.d.Height, c.d.Mines}
}

func (c *CustomDialog) Difficulty() config.Difficulty { return c.d }
