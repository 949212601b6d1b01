package termdraw

import "testing"

func TestNoopOutput(t *testing.T) {
	n, err := NoopOutput{}.Write([]byte("abc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 bytes reported, got %d", n)
	}
}

func TestMemoryOutput(t *testing.T) {
	out := NewMemoryOutput()

	if out.Last() != "" {
		t.Error("expected empty last frame initially")
	}

	out.Write([]byte("one"))
	out.Write([]byte("two"))

	frames := out.Frames()
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0] != "one" || frames[1] != "two" {
		t.Errorf("expected frames in write order, got %v", frames)
	}
	if out.Last() != "two" {
		t.Errorf("expected \"two\", got %q", out.Last())
	}

	out.Clear()
	if len(out.Frames()) != 0 {
		t.Error("expected no frames after Clear")
	}
}

func TestMemoryOutputFramesIsCopy(t *testing.T) {
	out := NewMemoryOutput()
	out.Write([]byte("one"))

	frames := out.Frames()
	frames[0] = "mutated"

	if out.Last() != "one" {
		t.Error("expected Frames to return a copy")
	}
}

func TestFixedSize(t *testing.T) {
	w, h, err := FixedSize{W: 12, H: 34}.Size()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 12 || h != 34 {
		t.Errorf("expected 12x34, got %dx%d", w, h)
	}
}
