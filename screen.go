package termdraw

import (
	"fmt"
	"os"
)

const (
	// DEFAULT_WIDTH is the fallback grid width when no size is supplied.
	DEFAULT_WIDTH = 80
	// DEFAULT_HEIGHT is the fallback grid height when no size is supplied.
	DEFAULT_HEIGHT = 24
)

// Screen ties the pieces together: a cursor-owned cell buffer plus a flush
// engine writing to an output sink. All drawing mutators are chainable and
// nothing reaches the terminal until Flush.
//
// A Screen is not safe for concurrent use. It performs no internal locking;
// callers sharing one screen across goroutines must synchronize externally.
type Screen struct {
	cursor  *Cursor
	flusher *Flusher

	width  int
	height int
	sized  bool
	output OutputProvider
	sizes  SizeProvider
	enc    CellEncoder
}

// Option configures a Screen during construction.
type Option func(*Screen)

// WithSize sets the grid dimensions in character cells.
func WithSize(width, height int) Option {
	return func(s *Screen) {
		s.width = width
		s.height = height
		s.sized = true
	}
}

// WithSizeFrom sets the provider queried for grid dimensions, e.g.
// TerminalSize{} to match the controlling terminal. WithSize takes
// precedence when both are given.
func WithSizeFrom(p SizeProvider) Option {
	return func(s *Screen) {
		s.sizes = p
	}
}

// WithOutput sets the sink flushes are written to. Defaults to os.Stdout.
func WithOutput(out OutputProvider) Option {
	return func(s *Screen) {
		s.output = out
	}
}

// WithEncoder replaces the cell encoder. The encoder must stay
// deterministic; see CellEncoder. Defaults to EncodeCell.
func WithEncoder(enc CellEncoder) Option {
	return func(s *Screen) {
		s.enc = enc
	}
}

// New creates a screen with an entirely unwritten grid, the cursor at
// (0, 0), and the default pen. Without a size option the grid is 80x24.
// Construction fails with *InvalidDimensionsError if the dimensions are
// not positive, and with the provider's error if the size query fails.
func New(opts ...Option) (*Screen, error) {
	s := &Screen{output: os.Stdout}

	for _, opt := range opts {
		opt(s)
	}

	if !s.sized {
		if s.sizes != nil {
			w, h, err := s.sizes.Size()
			if err != nil {
				return nil, fmt.Errorf("termdraw: size provider: %w", err)
			}
			s.width, s.height = w, h
		} else {
			s.width, s.height = DEFAULT_WIDTH, DEFAULT_HEIGHT
		}
	}

	buf, err := NewBuffer(s.width, s.height)
	if err != nil {
		return nil, err
	}

	s.cursor = NewCursor(buf)
	s.flusher = NewFlusher(s.output, s.enc)

	return s, nil
}

// Width returns the grid width in character columns.
func (s *Screen) Width() int {
	return s.cursor.Buffer().Width()
}

// Height returns the grid height in character rows.
func (s *Screen) Height() int {
	return s.cursor.Buffer().Height()
}

// Cell returns the cell at (x, y), or nil if unwritten or out of bounds.
func (s *Screen) Cell(x, y int) *Cell {
	return s.cursor.Buffer().Cell(x, y)
}

// Cursor returns the underlying cursor for direct use.
func (s *Screen) Cursor() *Cursor {
	return s.cursor
}

// Position returns the logical cursor position.
func (s *Screen) Position() (x, y int) {
	return s.cursor.Position()
}

// Flush writes the minimal terminal update since the previous flush.
// With no changes it writes nothing.
func (s *Screen) Flush() error {
	return s.flusher.Flush(s.cursor.Buffer())
}

// Render returns the full current frame's escape sequences without writing
// to the output or affecting what the next Flush emits.
func (s *Screen) Render() string {
	return s.flusher.Render(s.cursor.Buffer())
}

// Redraw forgets the previously flushed frame so the next Flush re-emits
// every written cell.
func (s *Screen) Redraw() *Screen {
	s.flusher.Reset()
	return s
}

// Write draws text at the cursor with the current pen. See Cursor.Write.
func (s *Screen) Write(text string) *Screen {
	s.cursor.Write(text)
	return s
}

// MoveTo positions the cursor absolutely.
func (s *Screen) MoveTo(x, y int) *Screen {
	s.cursor.MoveTo(x, y)
	return s
}

// MoveBy moves the cursor relatively, horizontal component first.
func (s *Screen) MoveBy(dx, dy int) *Screen {
	s.cursor.MoveBy(dx, dy)
	return s
}

// Up moves the cursor n rows up.
func (s *Screen) Up(n int) *Screen {
	s.cursor.Up(n)
	return s
}

// Down moves the cursor n rows down.
func (s *Screen) Down(n int) *Screen {
	s.cursor.Down(n)
	return s
}

// Left moves the cursor n columns left.
func (s *Screen) Left(n int) *Screen {
	s.cursor.Left(n)
	return s
}

// Right moves the cursor n columns right.
func (s *Screen) Right(n int) *Screen {
	s.cursor.Right(n)
	return s
}

// Foreground sets the pen foreground color.
func (s *Screen) Foreground(c Color) *Screen {
	s.cursor.Foreground(c)
	return s
}

// Background sets the pen background color.
func (s *Screen) Background(c Color) *Screen {
	s.cursor.Background(c)
	return s
}

// NoForeground resets the pen foreground to the terminal default.
func (s *Screen) NoForeground() *Screen {
	s.cursor.NoForeground()
	return s
}

// NoBackground resets the pen background to the terminal default.
func (s *Screen) NoBackground() *Screen {
	s.cursor.NoBackground()
	return s
}

// Bold toggles the bold pen attribute.
func (s *Screen) Bold(enabled bool) *Screen {
	s.cursor.Bold(enabled)
	return s
}

// Dim toggles the dim pen attribute.
func (s *Screen) Dim(enabled bool) *Screen {
	s.cursor.Dim(enabled)
	return s
}

// Underlined toggles the underlined pen attribute.
func (s *Screen) Underlined(enabled bool) *Screen {
	s.cursor.Underlined(enabled)
	return s
}

// Blink toggles the blink pen attribute.
func (s *Screen) Blink(enabled bool) *Screen {
	s.cursor.Blink(enabled)
	return s
}

// Reverse toggles the reverse-video pen attribute.
func (s *Screen) Reverse(enabled bool) *Screen {
	s.cursor.Reverse(enabled)
	return s
}

// Hidden toggles the hidden pen attribute.
func (s *Screen) Hidden(enabled bool) *Screen {
	s.cursor.Hidden(enabled)
	return s
}

// Erase blanks the inclusive rectangle (x1, y1)-(x2, y2). See Cursor.Erase.
func (s *Screen) Erase(x1, y1, x2, y2 int) *Screen {
	s.cursor.Erase(x1, y1, x2, y2)
	return s
}

// EraseToEnd erases from the cursor to the end of the current line.
func (s *Screen) EraseToEnd() *Screen {
	s.cursor.EraseToEnd()
	return s
}

// EraseToStart erases from the start of the current line to the cursor.
func (s *Screen) EraseToStart() *Screen {
	s.cursor.EraseToStart()
	return s
}

// EraseToDown erases from the current line to the bottom of the grid.
func (s *Screen) EraseToDown() *Screen {
	s.cursor.EraseToDown()
	return s
}

// EraseToUp erases from the top of the grid through the current line.
func (s *Screen) EraseToUp() *Screen {
	s.cursor.EraseToUp()
	return s
}

// EraseLine erases the entire current line.
func (s *Screen) EraseLine() *Screen {
	s.cursor.EraseLine()
	return s
}

// EraseScreen erases the entire grid.
func (s *Screen) EraseScreen() *Screen {
	s.cursor.EraseScreen()
	return s
}
