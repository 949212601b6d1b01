package termdraw

import "github.com/charmbracelet/x/ansi"

// CellEncoder renders a cell into the terminal control sequence that draws
// it in place. Implementations must be deterministic and side-effect-free:
// the flush engine compares encoder output by string equality.
type CellEncoder func(c *Cell) string

// EncodeCell is the default encoder. It emits absolute cursor positioning
// (CUP, 1-based), a style reset followed by the cell's SGR codes, and the
// character. The reset keeps the encoding self-contained: nil colors and
// cleared attributes always render as the terminal defaults, independent of
// whatever was emitted before.
func EncodeCell(c *Cell) string {
	seq := ansi.CursorPosition(c.X+1, c.Y+1) + ansi.ResetStyle

	var style ansi.Style
	if c.Attrs.Has(AttrBold) {
		style = style.Bold()
	}
	if c.Attrs.Has(AttrDim) {
		style = style.Faint()
	}
	if c.Attrs.Has(AttrUnderlined) {
		style = style.Underline(true)
	}
	if c.Attrs.Has(AttrBlink) {
		style = style.Blink(true)
	}
	if c.Attrs.Has(AttrReverse) {
		style = style.Reverse(true)
	}
	if c.Attrs.Has(AttrHidden) {
		style = style.Conceal(true)
	}
	if c.Fg != nil {
		style = style.ForegroundColor(trueColor(*c.Fg))
	}
	if c.Bg != nil {
		style = style.BackgroundColor(trueColor(*c.Bg))
	}

	if len(style) > 0 {
		seq += style.String()
	}

	return seq + string(c.Char)
}

// trueColor packs a Color into the 24-bit form x/ansi encodes as 38;2/48;2.
func trueColor(c Color) ansi.TrueColor {
	return ansi.TrueColor(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}
