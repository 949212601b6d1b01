package termdraw

import "fmt"

// InvalidDimensionsError reports a buffer construction attempt with a
// non-positive width or height. Dimensions are a caller contract: they come
// from a size provider at construction and are fixed for the buffer's life.
type InvalidDimensionsError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("termdraw: invalid buffer dimensions %dx%d", e.Width, e.Height)
}

// Buffer stores a fixed-size grid of optional cells in row-major order.
// A nil slot is unwritten: it renders nothing and never appears in a diff.
// Out-of-bounds reads return nil and out-of-bounds writes are absorbed;
// only construction with non-positive dimensions is an error.
type Buffer struct {
	width  int
	height int
	cells  []*Cell
}

// NewBuffer creates an entirely unwritten buffer with the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidDimensionsError{Width: width, Height: height}
	}

	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]*Cell, width*height),
	}, nil
}

// Width returns the buffer width in character columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in character rows.
func (b *Buffer) Height() int {
	return b.height
}

// Index maps (x, y) to the row-major slot index: y*width + x.
// Meaningful only for in-bounds coordinates.
func (b *Buffer) Index(x, y int) int {
	return y*b.width + x
}

// Coords is the inverse of Index: (i % width, i / width).
func (b *Buffer) Coords(i int) (x, y int) {
	return i % b.width, i / b.width
}

// InBounds returns true if (x, y) addresses a slot of the grid.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y), or nil if the slot is unwritten or the
// coordinates are out of bounds.
func (b *Buffer) Cell(x, y int) *Cell {
	if !b.InBounds(x, y) {
		return nil
	}
	return b.cells[b.Index(x, y)]
}

// SetCell stores a cell at (x, y). Out-of-bounds positions are ignored.
func (b *Buffer) SetCell(x, y int, cell *Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.Index(x, y)] = cell
}

// Cells returns the grid slots in row-major order. Unwritten slots are nil.
// The slice is the buffer's own storage; callers must not reorder it.
func (b *Buffer) Cells() []*Cell {
	return b.cells
}
