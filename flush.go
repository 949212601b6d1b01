package termdraw

import (
	"io"
	"strings"
)

// Flusher reconciles a buffer with the physical terminal. It retains the
// set of cell encodings from the last successful flush and, on each flush,
// emits only the cells whose current encoding is not in that set.
//
// Every encoding positions its cell absolutely, so emitted cells are
// self-contained and need not form contiguous runs; row-major order is kept
// for determinism, not for terminal correctness.
type Flusher struct {
	out      io.Writer
	enc      CellEncoder
	snapshot map[string]struct{}
}

// NewFlusher creates a flusher writing to out. A nil encoder falls back to
// EncodeCell. The snapshot starts empty, so the first flush emits every
// written cell.
func NewFlusher(out io.Writer, enc CellEncoder) *Flusher {
	if enc == nil {
		enc = EncodeCell
	}
	return &Flusher{
		out:      out,
		enc:      enc,
		snapshot: make(map[string]struct{}),
	}
}

// Flush writes the minimal update for buf: the concatenated encodings, in
// row-major order, of the written cells whose encoding differs from the
// retained frame. On success the retained frame is replaced with the
// complete current frame, so a cell that reverts to an earlier encoding
// across two flushes counts as unchanged on the third.
//
// If the sink write fails, the retained frame is left untouched and a
// retried flush recomputes the same diff.
func (f *Flusher) Flush(buf *Buffer) error {
	frame := make(map[string]struct{}, len(f.snapshot))
	var changed strings.Builder

	for _, cell := range buf.Cells() {
		if cell == nil {
			continue
		}
		encoded := f.enc(cell)
		if _, rendered := f.snapshot[encoded]; !rendered {
			changed.WriteString(encoded)
		}
		frame[encoded] = struct{}{}
	}

	if changed.Len() > 0 {
		if _, err := io.WriteString(f.out, changed.String()); err != nil {
			return err
		}
	}

	f.snapshot = frame
	return nil
}

// Render encodes the complete current frame in row-major order without
// writing anything or touching the retained snapshot.
func (f *Flusher) Render(buf *Buffer) string {
	var frame strings.Builder
	for _, cell := range buf.Cells() {
		if cell == nil {
			continue
		}
		frame.WriteString(f.enc(cell))
	}
	return frame.String()
}

// Reset forgets the retained frame. The next flush re-emits every written
// cell, e.g. after the terminal was cleared by an outside writer.
func (f *Flusher) Reset() {
	f.snapshot = make(map[string]struct{})
}
