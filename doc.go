// Package termdraw draws styled text on a character-cell terminal through a
// virtual screen buffer, emitting only the control sequences needed to bring
// the physical terminal in sync with the buffer.
//
// # Quick Start
//
// Create a screen, draw, and flush:
//
//	scr, err := termdraw.New(termdraw.WithSize(80, 24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scr.MoveTo(2, 1).Bold(true).Write("Hello, terminal").Flush()
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Screen]: the facade tying a buffer, a cursor, and a flusher together
//   - [Buffer]: a fixed-size row-major grid of optional cells
//   - [Cursor]: the logical position plus the pen applied to future writes
//   - [Cell]: one written grid position (character, coordinates, style)
//   - [Flusher]: the diff engine that emits minimal terminal updates
//
// # Drawing Model
//
// All drawing mutates the virtual buffer only. Write stores one cell per
// character at the cursor, capturing the pen's colors and attributes;
// movement is unclamped, and characters falling outside the grid are
// silently dropped while the cursor still advances. Nothing reaches the
// terminal until [Screen.Flush].
//
//	scr.MoveTo(10, 5).
//	    Foreground(termdraw.NewColor(255, 165, 0)).
//	    Underlined(true).
//	    Write("status: ok").
//	    Flush()
//
// # Diff-Based Flushing
//
// Every cell encodes to a self-contained escape sequence: absolute cursor
// position, style codes, then the character. The flusher retains the set of
// encodings from the last flushed frame and emits only cells whose current
// encoding is not in that set, in row-major order, as a single write. A
// flush with no changes writes nothing. After an outside writer disturbs the
// terminal, [Screen.Redraw] forces the next flush to re-emit everything.
//
// # Colors
//
// [Color] is a clamped 24-bit RGB value. Colors come from named lookup, hex
// or rgb() strings, integer triples, or any [image/color] value:
//
//	red, _ := termdraw.ParseColor("red")
//	sky, _ := termdraw.ParseColor("#87ceeb")
//	mint, _ := termdraw.ParseColor("rgb(62, 180, 137)")
//	gray := termdraw.NewColor(128, 128, 128)
//
// Channel values outside [0, 255] saturate instead of failing; only an
// unrecognized textual form is an error ([ColorParseError]).
//
// # Erasing
//
// Erase blanks a rectangle's characters while preserving each cell's colors
// and attributes. The [Cursor.EraseToEnd], [Cursor.EraseToStart],
// [Cursor.EraseToDown], [Cursor.EraseToUp], [Cursor.EraseLine], and
// [Cursor.EraseScreen] variants are fixed rectangles relative to the cursor
// and the grid bounds.
//
// # Providers
//
// Collaborators are pluggable at construction:
//
//   - [OutputProvider]: the byte sink flushes write to (default os.Stdout);
//     [MemoryOutput] captures frames for tests
//   - [SizeProvider]: grid dimensions; [TerminalSize] queries the
//     controlling terminal, [FixedSize] pins them
//   - [CellEncoder]: the cell-to-escape-sequence function, replaceable for
//     alternative sequence grammars
//
//	scr, err := termdraw.New(
//	    termdraw.WithSizeFrom(termdraw.TerminalSize{}),
//	    termdraw.WithOutput(os.Stderr),
//	)
//
// # Thread Safety
//
// A Screen performs no internal locking and is not safe for concurrent use.
// Buffer, cursor, and pen state are exclusively owned by one screen; sharing
// one across goroutines requires external synchronization.
package termdraw
