package termdraw

import "strings"

// namedColors is the fixed color dictionary: the 16 standard terminal colors
// plus the common web color names. Keys are lowercase; lookup is
// case-insensitive via LookupColor.
var namedColors = map[string]Color{
	// Standard terminal colors (0-7)
	"black":   {0, 0, 0},
	"red":     {205, 49, 49},
	"green":   {13, 188, 121},
	"yellow":  {229, 229, 16},
	"blue":    {36, 114, 200},
	"magenta": {188, 63, 188},
	"cyan":    {17, 168, 205},
	"white":   {229, 229, 229},

	// Bright variants (8-15)
	"brightblack":   {102, 102, 102},
	"brightred":     {241, 76, 76},
	"brightgreen":   {35, 209, 139},
	"brightyellow":  {245, 245, 67},
	"brightblue":    {59, 142, 234},
	"brightmagenta": {214, 112, 214},
	"brightcyan":    {41, 184, 219},
	"brightwhite":   {255, 255, 255},

	// Common web names
	"aqua":      {0, 255, 255},
	"beige":     {245, 245, 220},
	"brown":     {165, 42, 42},
	"coral":     {255, 127, 80},
	"crimson":   {220, 20, 60},
	"fuchsia":   {255, 0, 255},
	"gold":      {255, 215, 0},
	"gray":      {128, 128, 128},
	"grey":      {128, 128, 128},
	"indigo":    {75, 0, 130},
	"ivory":     {255, 255, 240},
	"khaki":     {240, 230, 140},
	"lavender":  {230, 230, 250},
	"lime":      {0, 255, 0},
	"maroon":    {128, 0, 0},
	"navy":      {0, 0, 128},
	"olive":     {128, 128, 0},
	"orange":    {255, 165, 0},
	"orchid":    {218, 112, 214},
	"pink":      {255, 192, 203},
	"plum":      {221, 160, 221},
	"purple":    {128, 0, 128},
	"salmon":    {250, 128, 114},
	"silver":    {192, 192, 192},
	"tan":       {210, 180, 140},
	"teal":      {0, 128, 128},
	"tomato":    {255, 99, 71},
	"turquoise": {64, 224, 208},
	"violet":    {238, 130, 238},
	"wheat":     {245, 222, 179},
}

// LookupColor resolves a color name from the fixed dictionary.
// Matching is case-insensitive. Returns false for unknown names.
func LookupColor(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

// ColorNames returns all recognized color names (lowercase, unordered).
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	return names
}
