package termdraw

// Attr is a bitmask of display attributes applied to a cell.
// All combinations are legal; each flag toggles independently.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrUnderlined
	AttrBlink
	AttrReverse
	AttrHidden
)

// Has returns true if the specified attribute is set.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns the set with the specified attribute enabled.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// Without returns the set with the specified attribute disabled.
func (a Attr) Without(attr Attr) Attr {
	return a &^ attr
}

// Cell is the resolved rendering state of one grid position: a character,
// its absolute coordinates, and the colors and attributes captured from the
// pen at write time. Nil Fg/Bg mean the terminal's default color.
//
// A cell's encoded form is a pure function of these five fields; the flush
// engine uses string equality of encodings as its sole change signal.
type Cell struct {
	Char  rune
	X     int
	Y     int
	Fg    *Color
	Bg    *Color
	Attrs Attr
}

// NewCell creates a cell at (x, y) with the given character and style.
func NewCell(ch rune, x, y int, fg, bg *Color, attrs Attr) *Cell {
	return &Cell{
		Char:  ch,
		X:     x,
		Y:     y,
		Fg:    fg,
		Bg:    bg,
		Attrs: attrs,
	}
}

// SetChar replaces the cell's character, keeping position, colors, and
// attributes. Erase uses this to blank a cell without losing its style.
func (c *Cell) SetChar(ch rune) {
	c.Char = ch
}

// Blank returns true if the cell renders as an empty position.
func (c *Cell) Blank() bool {
	return c.Char == ' '
}

// Encode returns the escape sequence that renders this cell in place:
// absolute cursor positioning, style codes, then the character.
// Identical fields always produce identical encodings.
func (c *Cell) Encode() string {
	return EncodeCell(c)
}

// String implements fmt.Stringer with the cell's encoded form.
func (c *Cell) String() string {
	return c.Encode()
}
