package termdraw

// Cursor owns a buffer and tracks the logical position and pen state used
// for writes. The position is signed and never clamped: movement may push it
// outside the grid, and only Write's per-character bounds check gates
// storage. The pen (foreground, background, attributes) is captured into
// every cell a write produces until changed.
//
// All mutators return the cursor for chaining:
//
//	cur.MoveTo(2, 1).Bold(true).Write("hello")
type Cursor struct {
	buf *Buffer

	x int
	y int

	fg    *Color
	bg    *Color
	attrs Attr
}

// NewCursor creates a cursor at (0, 0) with the default pen over the given
// buffer. The cursor takes exclusive ownership of the buffer.
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Buffer returns the owned grid.
func (c *Cursor) Buffer() *Buffer {
	return c.buf
}

// Position returns the logical cursor position, which may lie outside the
// grid.
func (c *Cursor) Position() (x, y int) {
	return c.x, c.y
}

// Write stores one cell per character of text, left to right from the
// current position, using a pen snapshot taken once at call entry. The
// position advances by one column per character whether or not the target
// slot is in bounds; there is no wrapping at the right edge.
func (c *Cursor) Write(text string) *Cursor {
	fg, bg, attrs := c.fg, c.bg, c.attrs

	for _, ch := range text {
		if c.buf.InBounds(c.x, c.y) {
			c.buf.SetCell(c.x, c.y, NewCell(ch, c.x, c.y, fg, bg, attrs))
		}
		c.x++
	}

	return c
}

// MoveTo positions the cursor absolutely, without bounds clamping.
func (c *Cursor) MoveTo(x, y int) *Cursor {
	c.x = x
	c.y = y
	return c
}

// MoveBy moves the cursor relatively, horizontal component first. Negative
// components move left/up, positive right/down.
func (c *Cursor) MoveBy(dx, dy int) *Cursor {
	if dx < 0 {
		c.Left(-dx)
	} else if dx > 0 {
		c.Right(dx)
	}

	if dy < 0 {
		c.Up(-dy)
	} else if dy > 0 {
		c.Down(dy)
	}

	return c
}

// Up moves the cursor n rows up.
func (c *Cursor) Up(n int) *Cursor {
	c.y -= n
	return c
}

// Down moves the cursor n rows down.
func (c *Cursor) Down(n int) *Cursor {
	c.y += n
	return c
}

// Left moves the cursor n columns left.
func (c *Cursor) Left(n int) *Cursor {
	c.x -= n
	return c
}

// Right moves the cursor n columns right.
func (c *Cursor) Right(n int) *Cursor {
	c.x += n
	return c
}

// Foreground sets the pen foreground color. The grid is untouched.
func (c *Cursor) Foreground(color Color) *Cursor {
	c.fg = &color
	return c
}

// Background sets the pen background color. The grid is untouched.
func (c *Cursor) Background(color Color) *Cursor {
	c.bg = &color
	return c
}

// NoForeground resets the pen foreground to the terminal default.
func (c *Cursor) NoForeground() *Cursor {
	c.fg = nil
	return c
}

// NoBackground resets the pen background to the terminal default.
func (c *Cursor) NoBackground() *Cursor {
	c.bg = nil
	return c
}

// Bold toggles the bold pen attribute.
func (c *Cursor) Bold(enabled bool) *Cursor {
	return c.setAttr(AttrBold, enabled)
}

// Dim toggles the dim pen attribute.
func (c *Cursor) Dim(enabled bool) *Cursor {
	return c.setAttr(AttrDim, enabled)
}

// Underlined toggles the underlined pen attribute.
func (c *Cursor) Underlined(enabled bool) *Cursor {
	return c.setAttr(AttrUnderlined, enabled)
}

// Blink toggles the blink pen attribute.
func (c *Cursor) Blink(enabled bool) *Cursor {
	return c.setAttr(AttrBlink, enabled)
}

// Reverse toggles the reverse-video pen attribute.
func (c *Cursor) Reverse(enabled bool) *Cursor {
	return c.setAttr(AttrReverse, enabled)
}

// Hidden toggles the hidden pen attribute.
func (c *Cursor) Hidden(enabled bool) *Cursor {
	return c.setAttr(AttrHidden, enabled)
}

func (c *Cursor) setAttr(attr Attr, enabled bool) *Cursor {
	if enabled {
		c.attrs = c.attrs.With(attr)
	} else {
		c.attrs = c.attrs.Without(attr)
	}
	return c
}

// Erase blanks every slot in the inclusive rectangle (x1, y1)-(x2, y2).
// A written cell keeps its colors and attributes and has its character
// forced to a space. An unwritten slot materializes a blank cell carrying
// the pen state in effect now, matching a physical terminal where erase
// always produces a visible blank. The rectangle is clipped to the grid;
// inverted corners erase nothing.
func (c *Cursor) Erase(x1, y1, x2, y2 int) *Cursor {
	minX := max(x1, 0)
	maxX := min(x2, c.buf.Width()-1)
	minY := max(y1, 0)
	maxY := min(y2, c.buf.Height()-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if cell := c.buf.Cell(x, y); cell != nil {
				cell.SetChar(' ')
			} else {
				c.buf.SetCell(x, y, NewCell(' ', x, y, c.fg, c.bg, c.attrs))
			}
		}
	}

	return c
}

// EraseToEnd erases from the cursor to the end of the current line.
func (c *Cursor) EraseToEnd() *Cursor {
	return c.Erase(c.x, c.y, c.buf.Width()-1, c.y)
}

// EraseToStart erases from the start of the current line to the cursor.
func (c *Cursor) EraseToStart() *Cursor {
	return c.Erase(0, c.y, c.x, c.y)
}

// EraseToDown erases from the current line to the bottom of the grid.
func (c *Cursor) EraseToDown() *Cursor {
	return c.Erase(0, c.y, c.buf.Width()-1, c.buf.Height()-1)
}

// EraseToUp erases from the top of the grid through the current line.
func (c *Cursor) EraseToUp() *Cursor {
	return c.Erase(0, 0, c.buf.Width()-1, c.y)
}

// EraseLine erases the entire current line.
func (c *Cursor) EraseLine() *Cursor {
	return c.Erase(0, c.y, c.buf.Width()-1, c.y)
}

// EraseScreen erases the entire grid.
func (c *Cursor) EraseScreen() *Cursor {
	return c.Erase(0, 0, c.buf.Width()-1, c.buf.Height()-1)
}
