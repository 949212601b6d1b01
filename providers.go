package termdraw

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputProvider is the sink flushed frames are written to: a synchronous,
// ordered byte sink, typically the process's stdout.
type OutputProvider = io.Writer

// NoopOutput discards all output (useful for dry runs and benchmarks).
type NoopOutput struct{}

func (NoopOutput) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// MemoryOutput captures everything written to it, one entry per write call.
// Each flush performs a single write, so entries correspond to frames.
//
// Example:
//
//	out := termdraw.NewMemoryOutput()
//	scr, _ := termdraw.New(termdraw.WithSize(80, 24), termdraw.WithOutput(out))
//	scr.Write("hi").Flush()
//	frames := out.Frames() // one entry with the emitted escape sequences
type MemoryOutput struct {
	frames []string
}

// NewMemoryOutput creates an empty capture sink.
func NewMemoryOutput() *MemoryOutput {
	return &MemoryOutput{}
}

// Write records one frame.
func (m *MemoryOutput) Write(p []byte) (n int, err error) {
	m.frames = append(m.frames, string(p))
	return len(p), nil
}

// Frames returns the captured writes in order, one entry per flush that
// emitted output.
func (m *MemoryOutput) Frames() []string {
	frames := make([]string, len(m.frames))
	copy(frames, m.frames)
	return frames
}

// Last returns the most recent frame, or "" if nothing was written.
func (m *MemoryOutput) Last() string {
	if len(m.frames) == 0 {
		return ""
	}
	return m.frames[len(m.frames)-1]
}

// Clear discards all captured frames.
func (m *MemoryOutput) Clear() {
	m.frames = nil
}

// --- Size Provider ---

// SizeProvider supplies the fixed grid dimensions at construction time.
type SizeProvider interface {
	// Size returns the grid width and height in character cells.
	Size() (width, height int, err error)
}

// FixedSize is a size provider with preset dimensions.
type FixedSize struct {
	W int
	H int
}

// Size returns the preset dimensions.
func (s FixedSize) Size() (width, height int, err error) {
	return s.W, s.H, nil
}

// TerminalSize reads the dimensions of the controlling terminal. The zero
// value queries stdout.
type TerminalSize struct {
	// TTY is the terminal to query. Defaults to os.Stdout.
	TTY *os.File
}

// Size queries the terminal for its current width and height.
func (s TerminalSize) Size() (width, height int, err error) {
	tty := s.TTY
	if tty == nil {
		tty = os.Stdout
	}
	return term.GetSize(int(tty.Fd()))
}

// Ensure implementations satisfy their interfaces
var (
	_ OutputProvider = NoopOutput{}
	_ OutputProvider = (*MemoryOutput)(nil)
	_ SizeProvider   = FixedSize{}
	_ SizeProvider   = TerminalSize{}
)
