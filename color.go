package termdraw

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color with each channel clamped to [0, 255].
// Colors are immutable values: every constructor and setter returns a new
// clamped value, out-of-range channels saturate instead of failing.
type Color struct {
	R int
	G int
	B int
}

// ColorParseError reports a color input that matches none of the recognized
// forms (named color, "#RRGGBB" hex, "rgb(r, g, b)").
type ColorParseError struct {
	Input string
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("termdraw: unrecognized color %q", e.Input)
}

// NewColor creates a color from integer channels.
// Channels outside [0, 255] are clamped to the nearest boundary.
func NewColor(r, g, b int) Color {
	return Color{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// ParseColor creates a color from its textual form. Accepted forms:
//
//   - a named color from the fixed dictionary, case-insensitive ("red", "Aqua")
//   - hex: "#RRGGBB" or the shorthand "#RGB"
//   - functional: "rgb(r, g, b)" with integer channels
//
// Any other input fails with a *ColorParseError.
func ParseColor(s string) (Color, error) {
	in := strings.TrimSpace(s)

	if c, ok := LookupColor(in); ok {
		return c, nil
	}

	if strings.HasPrefix(in, "#") {
		// Fixed-width forms only: "#RRGGBB" or "#RGB"
		if len(in) != 7 && len(in) != 4 {
			return Color{}, &ColorParseError{Input: s}
		}
		if hc, err := colorful.Hex(in); err == nil {
			r, g, b := hc.RGB255()
			return Color{R: int(r), G: int(g), B: int(b)}, nil
		}
		return Color{}, &ColorParseError{Input: s}
	}

	if c, ok := parseRGBFunc(in); ok {
		return c, nil
	}

	return Color{}, &ColorParseError{Input: s}
}

// ColorFrom adapts any [color.Color] value, truncating to 8 bits per channel.
func ColorFrom(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: int(r >> 8),
		G: int(g >> 8),
		B: int(b >> 8),
	}
}

// parseRGBFunc parses the "rgb(r, g, b)" form. Whitespace around the channel
// values is ignored; the channels themselves must be plain integers.
func parseRGBFunc(s string) (Color, bool) {
	if len(s) < len("rgb(0,0,0)") || !strings.EqualFold(s[:4], "rgb(") || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}

	parts := strings.Split(s[4:len(s)-1], ",")
	if len(parts) != 3 {
		return Color{}, false
	}

	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Color{}, false
		}
		ch[i] = v
	}

	return NewColor(ch[0], ch[1], ch[2]), true
}

// RGB returns the three channels, each in [0, 255].
func (c Color) RGB() (r, g, b int) {
	return c.R, c.G, c.B
}

// Hex returns the fixed 7-character "#rrggbb" form, zero-padded per channel.
// The output parses back to the identical channels via ParseColor.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// WithR returns a copy with the red channel replaced (clamped).
func (c Color) WithR(r int) Color {
	c.R = clampChannel(r)
	return c
}

// WithG returns a copy with the green channel replaced (clamped).
func (c Color) WithG(g int) Color {
	c.G = clampChannel(g)
	return c
}

// WithB returns a copy with the blue channel replaced (clamped).
func (c Color) WithB(b int) Color {
	c.B = clampChannel(b)
	return c
}

// clampChannel saturates a channel value to [0, 255]. Overshoot is a normal
// case (e.g. interpolation), so it never fails.
func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
