package termdraw

import (
	"strings"
	"testing"
)

func TestAttrIndependence(t *testing.T) {
	var a Attr

	a = a.With(AttrBold)
	if !a.Has(AttrBold) {
		t.Error("expected bold to be set")
	}

	a = a.With(AttrBlink)
	if !a.Has(AttrBold) || !a.Has(AttrBlink) {
		t.Error("expected both attributes set")
	}

	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("expected bold to be cleared")
	}
	if !a.Has(AttrBlink) {
		t.Error("expected blink to remain")
	}
}

func TestNewCell(t *testing.T) {
	fg := NewColor(1, 2, 3)
	bg := NewColor(4, 5, 6)

	cell := NewCell('A', 2, 3, &fg, &bg, AttrBold)

	if cell.Char != 'A' {
		t.Errorf("expected 'A', got '%c'", cell.Char)
	}
	if cell.X != 2 || cell.Y != 3 {
		t.Errorf("expected (2, 3), got (%d, %d)", cell.X, cell.Y)
	}
	if *cell.Fg != fg || *cell.Bg != bg {
		t.Error("expected colors to be stored")
	}
	if !cell.Attrs.Has(AttrBold) {
		t.Error("expected bold attribute")
	}
}

func TestCellSetChar(t *testing.T) {
	fg := NewColor(1, 2, 3)
	cell := NewCell('A', 0, 0, &fg, nil, AttrUnderlined)

	cell.SetChar(' ')

	if cell.Char != ' ' {
		t.Errorf("expected space, got '%c'", cell.Char)
	}
	if cell.Fg == nil || *cell.Fg != fg {
		t.Error("expected foreground to be preserved")
	}
	if !cell.Attrs.Has(AttrUnderlined) {
		t.Error("expected attributes to be preserved")
	}
	if !cell.Blank() {
		t.Error("expected cell to be blank")
	}
}

func TestCellEncodeDeterministic(t *testing.T) {
	fg := NewColor(200, 100, 50)
	bg := NewColor(5, 10, 15)

	a := NewCell('x', 3, 7, &fg, &bg, AttrBold|AttrReverse)
	b := NewCell('x', 3, 7, &fg, &bg, AttrBold|AttrReverse)

	if a.Encode() != b.Encode() {
		t.Error("expected identical fields to encode identically")
	}
	if a.Encode() != a.Encode() {
		t.Error("expected encoding to be stable across calls")
	}
}

func TestCellEncodeSamePointerIrrelevant(t *testing.T) {
	// Equal colors behind distinct pointers must encode identically:
	// the encoding depends on values, never on identity.
	fg1 := NewColor(9, 9, 9)
	fg2 := NewColor(9, 9, 9)

	a := NewCell('q', 0, 0, &fg1, nil, 0)
	b := NewCell('q', 0, 0, &fg2, nil, 0)

	if a.Encode() != b.Encode() {
		t.Error("expected value-equal colors to encode identically")
	}
}

func TestCellEncodeFieldSensitivity(t *testing.T) {
	fg := NewColor(200, 100, 50)
	bg := NewColor(5, 10, 15)
	fg2 := NewColor(201, 100, 50)
	bg2 := NewColor(5, 10, 16)

	base := NewCell('x', 3, 7, &fg, &bg, AttrBold)

	variants := map[string]*Cell{
		"char":       NewCell('y', 3, 7, &fg, &bg, AttrBold),
		"x":          NewCell('x', 4, 7, &fg, &bg, AttrBold),
		"y":          NewCell('x', 3, 8, &fg, &bg, AttrBold),
		"foreground": NewCell('x', 3, 7, &fg2, &bg, AttrBold),
		"background": NewCell('x', 3, 7, &fg, &bg2, AttrBold),
		"attributes": NewCell('x', 3, 7, &fg, &bg, AttrBold|AttrDim),
		"no fg":      NewCell('x', 3, 7, nil, &bg, AttrBold),
		"no attrs":   NewCell('x', 3, 7, &fg, &bg, 0),
	}

	for name, v := range variants {
		if v.Encode() == base.Encode() {
			t.Errorf("expected %s difference to change the encoding", name)
		}
	}
}

func TestCellEncodeShape(t *testing.T) {
	fg := NewColor(255, 0, 0)
	cell := NewCell('Z', 1, 2, &fg, nil, AttrBold)

	encoded := cell.Encode()

	if !strings.HasPrefix(encoded, "\x1b[") {
		t.Errorf("expected CSI prefix, got %q", encoded)
	}
	if !strings.HasSuffix(encoded, "Z") {
		t.Errorf("expected trailing character, got %q", encoded)
	}
}

func TestCellEncodePositionsRowThenColumn(t *testing.T) {
	// CUP takes 1-based row;column, so (x=2, y=5) must position with
	// "\x1b[6;3H" and never the transposed "\x1b[3;6H".
	cell := NewCell('a', 2, 5, nil, nil, 0)

	if !strings.HasPrefix(cell.Encode(), "\x1b[6;3H") {
		t.Errorf("expected encoding to start with \\x1b[6;3H, got %q", cell.Encode())
	}
}

func TestCellEncodeEveryAttribute(t *testing.T) {
	attrs := []struct {
		name string
		attr Attr
	}{
		{"bold", AttrBold},
		{"dim", AttrDim},
		{"underlined", AttrUnderlined},
		{"blink", AttrBlink},
		{"reverse", AttrReverse},
		{"hidden", AttrHidden},
	}

	plain := NewCell('x', 0, 0, nil, nil, 0)

	for _, tt := range attrs {
		styled := NewCell('x', 0, 0, nil, nil, tt.attr)
		if styled.Encode() == plain.Encode() {
			t.Errorf("expected %s to appear in the encoding", tt.name)
		}
	}

	all := NewCell('x', 0, 0, nil, nil,
		AttrBold|AttrDim|AttrUnderlined|AttrBlink|AttrReverse|AttrHidden)
	if all.Encode() == plain.Encode() {
		t.Error("expected combined attributes to appear in the encoding")
	}
}

func TestCellString(t *testing.T) {
	cell := NewCell('a', 0, 0, nil, nil, 0)
	if cell.String() != cell.Encode() {
		t.Error("expected String to return the encoding")
	}
}
